package render

import (
	"fmt"
	"strings"

	"github.com/unidoc/unipdf/v4/common"
	"github.com/unidoc/unipdf/v4/common/license"
)

// Config controls process-wide engine behavior.
type Config struct {
	// LicenseKey is the metered engine license key. Empty leaves the
	// engine unlicensed.
	LicenseKey string

	// LogLevel sets the engine's console logging: one of trace,
	// debug, info, notice, warning, error. Empty leaves engine
	// logging off.
	LogLevel string
}

// Configure applies process-wide engine settings. Call it once,
// before opening documents; it is entirely optional.
func Configure(cfg Config) error {
	if cfg.LicenseKey != "" {
		if err := license.SetMeteredKey(cfg.LicenseKey); err != nil {
			return fmt.Errorf("failed to set license key: %w", err)
		}
	}

	if cfg.LogLevel != "" {
		level, err := parseLogLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		common.SetLogger(common.NewConsoleLogger(level))
	}

	return nil
}

func parseLogLevel(s string) (common.LogLevel, error) {
	switch strings.ToLower(s) {
	case "trace":
		return common.LogLevelTrace, nil
	case "debug":
		return common.LogLevelDebug, nil
	case "info":
		return common.LogLevelInfo, nil
	case "notice":
		return common.LogLevelNotice, nil
	case "warn", "warning":
		return common.LogLevelWarning, nil
	case "error":
		return common.LogLevelError, nil
	default:
		return 0, fmt.Errorf("unknown engine log level %q", s)
	}
}
