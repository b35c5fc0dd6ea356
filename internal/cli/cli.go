// Package cli holds the reporting and logging glue shared by the
// lrgasp-validate commands.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes shared by the commands.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitUsage   = 2
)

const envPrefix = "LRGASP"

// ReportError writes err to w as the final diagnostic: one line for the
// error itself and one indented line per underlying cause.
func ReportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(w, "    caused by: %v\n", cause)
	}
}

// NewLogger builds the command logger. Without verbose it is a no-op so
// a successful run stays silent. With verbose it logs at debug, unless
// LRGASP_LOG_LEVEL overrides the level.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv("log_level"); err != nil {
		return nil, err
	}

	level := zapcore.DebugLevel
	if s := v.GetString("log_level"); s != "" {
		parsed, err := zapcore.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s_LOG_LEVEL %q: %w", envPrefix, s, err)
		}
		level = parsed
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
