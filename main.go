package main

import (
	"context"
	"os"
	"time"

	"github.com/soocke/clicky-go/app"
	"github.com/soocke/clicky-go/config"
	"github.com/soocke/clicky-go/debug"
)

func main() {
	// Base config from defaults, overlaid with the user's file
	cfgPath, err := config.DefaultPath()
	cfg := config.DefaultConfig()
	var loadErr error
	if err == nil {
		cfg, loadErr = config.Load(cfgPath)
	}

	// Set up logger
	logger := NewLogger(cfg.Level())
	if err != nil {
		logger.Warn("config path unavailable, using defaults", "error", err)
	}
	if loadErr != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", loadErr)
	}
	if cfg.SettingsPath == "" {
		if p, err := config.DefaultSettingsPath(); err == nil {
			cfg.SettingsPath = p
		} else {
			logger.Warn("settings path unavailable", "error", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Debug {
		debug.StartMonitor(ctx, 2*time.Second, logger)
	}

	if err := app.Run(cfg, cfgPath, logger); err != nil {
		logger.Error("clicky exited", "error", err)
		cancel()
		os.Exit(1)
	}
}
