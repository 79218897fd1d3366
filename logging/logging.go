package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// processLevel is shared by the logger Setup builds, so SetLevel can change
// it after a config reload.
var processLevel slog.LevelVar

// ParseLevel converts a config log level to slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func handlerOptions(level slog.Leveler) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}
}

// New builds a text logger writing to w.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, handlerOptions(ParseLevel(level))))
}

// SetLevel changes the level of the logger returned by Setup.
func SetLevel(level string) {
	processLevel.Set(ParseLevel(level))
}

// Setup builds the process logger: stdout, plus logFile when set. The
// returned close func releases the file.
func Setup(level, logFile string) (*slog.Logger, func() error, error) {
	SetLevel(level)
	if logFile == "" {
		logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOptions(&processLevel)))
		slog.SetDefault(logger)
		return logger, func() error { return nil }, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", logFile, err)
	}
	logger := slog.New(slog.NewTextHandler(io.MultiWriter(os.Stdout, f), handlerOptions(&processLevel)))
	slog.SetDefault(logger)
	logger.Info("logging initialized", "level", level, "file", logFile)
	return logger, f.Close, nil
}
