package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// NewLogger creates a new slog.Logger with JSON output and UTC timestamps
func NewLogger(level string) *slog.Logger {
	return slog.New(newJSONHandler(level, os.Stdout))
}

// newJSONHandler builds the JSON handler shared by NewLogger and tests.
// Timestamps are rewritten to RFC3339Nano in UTC so every log line renders
// the same regardless of the host timezone.
func newJSONHandler(level string, w io.Writer) slog.Handler {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn", "warning":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelWarn
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano)),
				}
			}
			return a
		},
	})
}
