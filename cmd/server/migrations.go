package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/GamerBhai02/Vibeathon-new-main/internal/config"
)

// migrationsDir is resolved relative to the working directory.
const migrationsDir = "migrations"

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...), "source", "goose")
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...), "source", "goose")
}

// runMigrations executes the requested goose command against the configured
// database. Supported commands: up, down, status.
func runMigrations(cfg *config.Config, command string, logger *slog.Logger) error {
	goose.SetLogger(&slogGooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close migration database connection", "error", err)
		}
	}()

	logger.Info("running migrations", "command", command, "dir", migrationsDir)

	switch command {
	case "up":
		err = goose.Up(db, migrationsDir)
	case "down":
		err = goose.Down(db, migrationsDir)
	case "status":
		err = goose.Status(db, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	logger.Info("migrations complete", "command", command)
	return nil
}
