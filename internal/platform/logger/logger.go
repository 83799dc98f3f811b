package logger

import (
	"log/slog"
	"os"
)

// New returns the shared structured logger. JSON output keeps log aggregation
// happy; level defaults to info unless LOG_LEVEL=debug.
func New() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
