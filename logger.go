package main

import (
	"log/slog"
	"os"

	"github.com/soocke/clicky-go/config"
)

// NewLogger returns a JSON slog.Logger on stdout tagged with the app name.
func NewLogger(level slog.Leveler) *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("app", config.AppName)
}
