package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load builds the effective configuration: defaults, overlaid by the
// optional YAML config file, overlaid by TK_* environment variables.
// Priority order matches the CLI help: flags > env > file > defaults
// (flags are applied later by the root command).
func Load() (*Config, error) {
	cfg := NewConfig()

	// Env can relocate the config dir, so apply it once before looking
	// for the file and once after, letting env win over file values.
	cfg.applyEnv()

	if err := cfg.applyFile(cfg.ConfigFilePath()); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	return cfg, nil
}

// applyFile overlays configuration from a YAML file. A missing file is
// not an error; a malformed one is.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
