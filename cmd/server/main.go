// Package main implements the entry point for the study platform server,
// which orchestrates AI study agents, manages spaced repetition flashcards
// and ingests uploaded study material.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/config"
	"github.com/GamerBhai02/Vibeathon-new-main/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run database migrations instead of serving: up, down or status")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd, appLogger); err != nil {
			appLogger.Error("migration failed", "command", *migrateCmd, "error", err)
			os.Exit(1)
		}
		return
	}

	if err := run(context.Background(), cfg, appLogger); err != nil {
		appLogger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run builds the application and serves it until shutdown.
func run(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) error {
	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.Close()

	return serve(ctx, app)
}
