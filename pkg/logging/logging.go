// Package logging sets up the process-wide structured logger.
package logging

import (
	"log/slog"
	"os"
)

// New builds a slog.Logger for the given environment: JSON output in
// production, human-readable text everywhere else.
func New(environment string) *slog.Logger {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler).With("service", "vacancy-service")
}
