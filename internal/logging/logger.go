package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Error log rotation: 1 MB files, three backups kept.
const (
	ERROR_LOG_MAX_SIZE_MB = 1
	ERROR_LOG_MAX_BACKUPS = 3
)

// InitLogger installs the default logger. Records at error level are also
// written as JSON to errorFile, unless it is empty.
func InitLogger(level, errorFile string) {
	slog.SetDefault(NewLogger(os.Stdout, level, errorFile))
}

func NewLogger(w io.Writer, level, errorFile string) *slog.Logger {
	console := tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(level),
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})
	if errorFile == "" {
		return slog.New(console)
	}

	rotating := &lumberjack.Logger{
		Filename:   errorFile,
		MaxSize:    ERROR_LOG_MAX_SIZE_MB,
		MaxBackups: ERROR_LOG_MAX_BACKUPS,
	}
	file := slog.NewJSONHandler(rotating, &slog.HandlerOptions{
		Level:     slog.LevelError,
		AddSource: true,
	})
	return slog.New(fanout{console, file})
}

// ParseLevel maps a LOG_LEVEL value onto a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// fanout passes each record to every handler enabled for its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
