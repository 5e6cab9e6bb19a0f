// Package logging builds the zap logger used by the abbr CLI. Logs go to
// stderr so that command output on stdout stays machine-readable.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encodings.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Defaults used when neither flags nor config set a value.
const (
	DefaultLevel  = "warn"
	DefaultFormat = FormatConsole
)

// New returns a logger writing entries at or above level to stderr in the
// given format.
func New(level, format string) (*zap.Logger, error) {
	return newWithOutput(level, format, "stderr")
}

// newWithOutput is New with explicit zap output paths.
func newWithOutput(level, format string, outputPaths ...string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	var zc zap.Config
	switch format {
	case FormatJSON:
		zc = zap.NewProductionConfig()
	case FormatConsole, "":
		zc = zap.NewDevelopmentConfig()
		zc.Encoding = FormatConsole
		zc.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("log format %q: must be %s or %s", format, FormatConsole, FormatJSON)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Sampling = nil
	zc.OutputPaths = outputPaths
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
