package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aws/smithy-go/logging"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// ParseLevel maps a --log-level value to a slog level. Unknown values are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewConsoleHandler returns a tint handler on w. Color is dropped when w is not a terminal.
func NewConsoleHandler(w io.Writer, level slog.Level, noColor bool) slog.Handler {
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		noColor = true
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	})
}

// ConsoleLogger builds the stderr logger and installs it as the slog default.
func ConsoleLogger(level slog.Level, noColor bool) *slog.Logger {
	logger := slog.New(NewConsoleHandler(os.Stderr, level, noColor))
	slog.SetDefault(logger)
	return logger
}

// AwsLogger routes AWS SDK client logging into logger. SDK warnings stay warnings, everything
// else is debug.
func AwsLogger(logger *slog.Logger) logging.Logger {
	return logging.LoggerFunc(func(classification logging.Classification, format string, v ...interface{}) {
		msg := fmt.Sprintf(format, v...)
		switch classification {
		case logging.Warn:
			logger.Warn(msg, "source", "aws-sdk")
		default:
			logger.Debug(msg, "source", "aws-sdk")
		}
	})
}
