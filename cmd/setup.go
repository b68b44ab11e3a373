package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/infosys/internal/shared"
)

// loadOrCreateConfig reads the config at path, writing the embedded template first when the
// file is missing. Any failure falls back to the defaults.
func (r *Runner) loadOrCreateConfig(path string) *shared.Config {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := shared.CreateConfigFile(path); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "path", path, "error", err)
			return shared.DefaultConfig()
		}
		r.logger.Info("config file created", "path", path)
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		r.logger.Warn("failed to load config, using defaults", "path", path, "error", err)
		return shared.DefaultConfig()
	}
	return config
}

// SetupDatabase writes a config file when missing, then initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config := r.loadOrCreateConfig(cmd.String("config"))

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	pending, err := shared.PendingMigrations(db)
	if err != nil {
		return fmt.Errorf("failed to inspect migrations: %w", err)
	}
	for _, m := range pending {
		r.logger.Info("pending migration", "version", m.Version, "name", m.Name)
	}

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := shared.CurrentVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	r.logger.Info("setup complete", "path", config.Database.Path, "applied", len(pending))
	return r.writePlain("✓ Database ready (schema version %d, %d applied)\n", version, len(pending))
}
