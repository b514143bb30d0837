package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/app"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/config"
	"github.com/carlos-naranjo-aa/zoominfo-api-client/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "prospector start failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	// The config carries API credentials, so only a redacted summary is logged.
	log.InfoObj("prospector starting", "config", map[string]any{
		"app_name":          cfg.AppName,
		"env":               cfg.Env,
		"log_level":         cfg.LogLevel,
		"zoominfo_base_url": cfg.ZoomInfoBaseURL,
		"zoominfo_username": cfg.ZoomInfoUsername,
		"searches_file":     cfg.SearchesFile,
		"publishers_file":   cfg.PublishersFile,
		"poll_interval":     cfg.PollInterval.String(),
		"storage_type":      cfg.StorageType,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prospector, err := app.NewProspector(ctx, cfg, log)
	if err != nil {
		log.ErrorObj("failed to initialize prospector", "error", err)
		return err
	}

	if err := prospector.Run(ctx); err != nil {
		return fmt.Errorf("prospector run: %w", err)
	}

	return nil
}
