package logger

import (
	"log/slog"
	"os"
)

// InitJSONLogger configures and sets the default slog logger to use JSON format.
// Debug mode lowers the level so per-request details reach the output.
func InitJSONLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
