package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Hatchet  HatchetConfig  `toml:"hatchet"`
	Engine   EngineConfig   `toml:"engine"`
	Account  AccountConfig  `toml:"account"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

// HatchetConfig contains remote API settings.
type HatchetConfig struct {
	BaseURL        string  `toml:"base_url"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	RateLimit      float64 `toml:"rate_limit"` // requests per second, 0 disables limiting
	Burst          int     `toml:"burst"`
}

// Timeout returns the per-request transport timeout.
func (h HatchetConfig) Timeout() time.Duration {
	if h.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// EngineConfig sizes the background worker pool.
type EngineConfig struct {
	Workers   int `toml:"workers"`
	QueueSize int `toml:"queue_size"`
}

// AccountConfig seeds the account store for identity resolution.
type AccountConfig struct {
	Username string `toml:"username"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep the embedded defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %v", ErrMissingConfig, err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the values that the engine cannot run without.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Hatchet.BaseURL, "http://") && !strings.HasPrefix(c.Hatchet.BaseURL, "https://") {
		return fmt.Errorf("%w: hatchet.base_url must be an http(s) URL, got %q", ErrInvalidConfig, c.Hatchet.BaseURL)
	}
	if c.Hatchet.RateLimit < 0 {
		return fmt.Errorf("%w: hatchet.rate_limit must not be negative", ErrInvalidConfig)
	}
	if c.Engine.Workers < 0 || c.Engine.QueueSize < 0 {
		return fmt.Errorf("%w: engine sizes must not be negative", ErrInvalidConfig)
	}
	return nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
