package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/tsawler/imago/format"
)

// Export renders the page according to opts and writes the result to
// outPath, choosing the encoder from the filename extension.
func Export(page *Page, opts ImageOptions, outPath string) error {
	f := format.Detect(outPath)
	if f == format.Unknown {
		return fmt.Errorf("unsupported output format for %q", outPath)
	}

	img, err := page.Render(opts)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := Encode(out, img, f, opts.Quality); err != nil {
		return fmt.Errorf("failed to encode %s: %w", f, err)
	}
	return nil
}

// Encode writes img to w in the given format. quality is the JPEG
// quality (1-100), zero meaning DefaultQuality; PNG and TIFF ignore
// it.
func Encode(w io.Writer, img image.Image, f format.Format, quality int) error {
	switch f {
	case format.JPEG:
		if quality <= 0 {
			quality = DefaultQuality
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case format.PNG:
		return png.Encode(w, img)
	case format.TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("unsupported image format: %v", f)
	}
}

// scaleTo resamples src to exactly width x height pixels using the
// Catmull-Rom kernel. src is returned untouched when it already has
// the target dimensions.
func scaleTo(src image.Image, width, height int) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}

// toGray converts an image to 8-bit grayscale. Images that already
// are grayscale pass through unchanged.
func toGray(src image.Image) image.Image {
	if _, ok := src.(*image.Gray); ok {
		return src
	}

	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
