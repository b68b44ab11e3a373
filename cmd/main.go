package main

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/infosys/internal/shared"
)

const configEnv = "INFOSYS_CONFIG"

func main() {
	logger := shared.NewLogger(nil)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", "error", err)
	}

	configPath := "config.toml"
	if p := os.Getenv(configEnv); p != "" {
		configPath = p
	}

	config := shared.DefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if loadedConfig, err := shared.LoadConfig(configPath); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
		}
	}
	shared.SetLogLevel(logger, shared.ParseLogLevel(config.Log.Level))

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "infosys",
		Usage:    "Resolve music metadata and send listening activity via the Hatchet API",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		switch {
		case errors.Is(err, shared.ErrAuthUnavailable):
			logger.Warn("no usable access token; run `infosys auth login --token <token>`")
		case errors.Is(err, shared.ErrIdentityUnavailable):
			logger.Warn("user id unknown; run `infosys auth login --username <name>`")
		}
		logger.Fatalf("application error: %v", err)
	}
}
