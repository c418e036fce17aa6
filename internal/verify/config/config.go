package config

import (
	"errors"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the verifier module.
type Config struct {
	// ExportRoot is the bundle root the emulator seed script writes to.
	// The default keeps invocation-compatibility with running the verifier
	// from the repository root, but any path can be supplied.
	ExportRoot string `env:"EXPORT_DATA_ROOT" envDefault:"tests/.firestore-data"`

	// HexPreviewBytes bounds the diagnostic hex dump taken from the head of
	// the data shard.
	HexPreviewBytes int `env:"HEX_PREVIEW_BYTES" envDefault:"64"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load verifier configuration from environment: " + err.Error())
	}

	// Validations after attempting to load from environment
	if cfg.ExportRoot == "" {
		cfg.ExportRoot = "tests/.firestore-data"
	}
	if cfg.HexPreviewBytes < 0 {
		return nil, errors.New("HEX_PREVIEW_BYTES must not be negative")
	}

	return cfg, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		ExportRoot:      "tests/.firestore-data",
		HexPreviewBytes: 64,
		LogLevel:        "info",
		LogFormat:       "text",
	}
}
