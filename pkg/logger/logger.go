package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init sets up the global JSON logger. Level defaults to info and can be
// lowered via LOG_LEVEL=debug.
func Init() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
