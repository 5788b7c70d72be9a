package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/init-pkg/contacts-uploader/internal/config"
)

// New builds the process logger. Format "text" writes human readable lines, anything else JSON.
func New(cfg *config.Config) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg.Log.Level, cfg.Log.Format).
		With("service", cfg.App.Name, "env", cfg.App.Env)
}

func NewWithWriter(w io.Writer, level, format string) *slog.Logger {
	var opts = &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

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
