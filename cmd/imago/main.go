// Command imago exports a page of a PDF document as a set of demo
// images: a fixed-width JPEG, a grayscale half-size JPEG and a crop
// of the visual top half of the page.
//
// Usage:
//
//	imago [input.pdf [output-prefix]]
//
// Without arguments it exports the bundled sample document using the
// prefix "imago". Configuration is read from the environment (or a
// .env file): UNIDOC_LICENSE_API_KEY, IMAGO_ENV, IMAGO_ENGINE_LOG,
// IMAGO_JPEG_QUALITY and IMAGO_ANNOTATIONS.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/imago"
	"github.com/tsawler/imago/internal/env"
	"github.com/tsawler/imago/render"
	"go.uber.org/zap"
)

const (
	defaultInput  = "testdata/sample.pdf"
	defaultPrefix = "imago"

	fixedWidth    = 400
	halfSizeScale = 0.5
	halfSizeDPI   = 150
)

type config struct {
	env         string
	licenseKey  string
	engineLog   string
	jpegQuality int
	annotations bool
}

func loadConfig() config {
	return config{
		env:         env.GetString("IMAGO_ENV", "development"),
		licenseKey:  env.GetString("UNIDOC_LICENSE_API_KEY", ""),
		engineLog:   env.GetString("IMAGO_ENGINE_LOG", ""),
		jpegQuality: env.GetInt("IMAGO_JPEG_QUALITY", render.DefaultQuality),
		annotations: env.GetBool("IMAGO_ANNOTATIONS", true),
	}
}

func newLogger(environment string) *zap.SugaredLogger {
	if environment == "production" {
		return zap.Must(zap.NewProduction()).Sugar()
	}
	return zap.Must(zap.NewDevelopment()).Sugar()
}

func main() {
	env.LoadEnv(".env")

	if len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "usage: %s [input.pdf [output-prefix]]\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	input := defaultInput
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	prefix := defaultPrefix
	if len(os.Args) > 2 {
		prefix = os.Args[2]
	}

	cfg := loadConfig()
	logger := newLogger(cfg.env)
	defer logger.Sync()

	if err := run(cfg, logger, input, prefix); err != nil {
		logger.Fatalw("export failed", "error", err)
	}

	logger.Infow("done", "prefix", prefix)
}

// run performs the three exports. The document is closed here, not in
// main, so it is released exactly once no matter which export fails.
func run(cfg config, logger *zap.SugaredLogger, input, prefix string) error {
	if err := render.Configure(render.Config{
		LicenseKey: cfg.licenseKey,
		LogLevel:   cfg.engineLog,
	}); err != nil {
		return fmt.Errorf("failed to configure render engine: %w", err)
	}

	doc, err := render.Open(input)
	if err != nil {
		return err
	}
	defer doc.Close()

	logger.Infow("document opened", "input", input, "pages", doc.PageCount())

	base := imago.FromDocument(doc).
		Quality(cfg.jpegQuality).
		IncludeAnnotations(cfg.annotations)

	box, rot, err := base.Geometry()
	if err != nil {
		return err
	}
	logger.Debugw("page geometry", "box", box.String(), "rotation", rot.String())

	outPath := prefix + "-400pixel-width.jpg"
	if err := base.SaveWidth(fixedWidth, outPath); err != nil {
		return fmt.Errorf("failed to export %s: %w", outPath, err)
	}
	logger.Infow("exported", "output", outPath)

	outPath = prefix + "-grayscale-halfsize.jpg"
	if err := base.DPI(halfSizeDPI).Grayscale().SaveScaled(halfSizeScale, outPath); err != nil {
		return fmt.Errorf("failed to export %s: %w", outPath, err)
	}
	logger.Infow("exported", "output", outPath)

	outPath = prefix + "-tophalf.jpg"
	if err := base.SaveTopHalf(outPath); err != nil {
		return fmt.Errorf("failed to export %s: %w", outPath, err)
	}
	logger.Infow("exported", "output", outPath)

	return nil
}
