package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/lmittmann/tint"
)

var once sync.Once

// Init installs a tint handler as the default slog logger.
// Safe to call more than once; only the first call takes effect.
func Init(level string) {
	once.Do(func() {
		handler := tint.NewHandler(os.Stdout, &tint.Options{
			Level:      parseLevel(level),
			TimeFormat: "15:04:05",
		})
		slog.SetDefault(slog.New(handler))
	})
}

func parseLevel(level string) slog.Level {
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
