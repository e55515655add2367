package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load builds the configuration with priority ENV > YAML > env-default tags
// and validates it. The YAML file is CONFIG_PATH when set; otherwise
// ./config.yaml is used if present and the environment alone if not.
func Load() (*Config, error) {
	cfg, err := read(os.Getenv(pathEnv))
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func read(path string) (*Config, error) {
	cfg := newConfig()

	if path == "" {
		if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, fmt.Errorf("config: read env: %w", err)
			}
			return &cfg, nil
		}
		path = defaultPath
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return &cfg, nil
}

// Usage returns the env var help text for the root configuration.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
