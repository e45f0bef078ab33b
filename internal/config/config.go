package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for the CLI and the HTTP gateway.
type Config struct {
	Addr         string `yaml:"addr" env:"RPSLS_ADDR"`
	LogLevel     string `yaml:"log_level" env:"RPSLS_LOG_LEVEL"`
	LogFormat    string `yaml:"log_format" env:"RPSLS_LOG_FORMAT"`
	AllowOrigins string `yaml:"allow_origins" env:"RPSLS_ALLOW_ORIGINS"`
	// Seed fixes the opponent's random source. Zero seeds from the clock.
	Seed int64 `yaml:"seed" env:"RPSLS_SEED"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Addr:         ":5000",
		LogLevel:     "info",
		LogFormat:    "text",
		AllowOrigins: "*",
	}
}

// Load builds a Config from defaults, an optional YAML file, a .env file in
// the working directory and finally the process environment, each layer
// overriding the previous one.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// A missing .env is normal outside development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("config: addr must not be empty")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q (use text or json)", c.LogFormat)
	}
	return nil
}
