package shared

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Hatchet.BaseURL != "https://api.hatchet.is" {
			t.Errorf("expected hatchet base URL https://api.hatchet.is, got %s", config.Hatchet.BaseURL)
		}
		if config.Database.Path != "./infosys.db" {
			t.Errorf("expected database path ./infosys.db, got %s", config.Database.Path)
		}
		if config.Engine.Workers != 4 {
			t.Errorf("expected 4 workers, got %d", config.Engine.Workers)
		}
		if config.Hatchet.Timeout() != 15*time.Second {
			t.Errorf("expected 15s timeout, got %v", config.Hatchet.Timeout())
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		if config.Database.Path != DefaultConfig().Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[hatchet]
base_url = "http://localhost:9090"
rate_limit = 2.5

[engine]
workers = 8

[account]
username = "mrmaffen"

[log]
level = "debug"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Hatchet.BaseURL != "http://localhost:9090" {
			t.Errorf("expected base URL http://localhost:9090, got %s", config.Hatchet.BaseURL)
		}
		if config.Hatchet.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5, got %v", config.Hatchet.RateLimit)
		}
		if config.Engine.Workers != 8 {
			t.Errorf("expected 8 workers, got %d", config.Engine.Workers)
		}
		if config.Account.Username != "mrmaffen" {
			t.Errorf("expected username mrmaffen, got %s", config.Account.Username)
		}
		if config.Engine.QueueSize != 64 {
			t.Errorf("expected queue size default 64 to survive partial file, got %d", config.Engine.QueueSize)
		}
	})

	t.Run("LoadConfig rejects bad base URL", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(configPath, []byte("[hatchet]\nbase_url = \"ftp://nope\"\n"), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		_, err := LoadConfig(configPath)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
		if !errors.Is(err, ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})
}
