package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the global ~/.wxexport/config.toml. Every field is an
// optional default; CLI flags take precedence.
type Config struct {
	MessageDB string `toml:"message_db"`
	ContactDB string `toml:"contact_db"`
	OutputDir string `toml:"output_dir"`
}

// Load reads config from the given path. Returns zero config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}

// ResolveSource determines a source database path using precedence:
// 1. flagOverride (-db / -contacts flag)
// 2. the config.toml default
// 3. "" (caller falls back to discovery)
func ResolveSource(flagOverride, configured string) string {
	if flagOverride != "" {
		return flagOverride
	}
	return configured
}
