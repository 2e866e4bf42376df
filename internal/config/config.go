package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the timekeep application
type Config struct {
	Database    DatabaseConfig    `yaml:"database"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir      string `yaml:"dir" env:"TK_DB_DIR"`
	Filename string `yaml:"filename" env:"TK_DB_FILENAME"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `yaml:"time_format" env:"TK_TIME_FORMAT"`
	DateOnly   bool   `yaml:"date_only" env:"TK_DATE_ONLY"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TK_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"TK_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Dir:      filepath.Join(homeDir, ".timekeep"),
			Filename: "timekeep.db",
		},
		Display: DisplayConfig{
			TimeFormat: "2006-01-02 15:04",
			DateOnly:   false,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// DatabasePath returns the full path to the database file
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// ConfigFilePath returns the default path of the optional YAML config file
func (c *Config) ConfigFilePath() string {
	return filepath.Join(c.Database.Dir, "config.yaml")
}

// applyEnv overrides configuration values from TK_* environment variables
func (c *Config) applyEnv() {
	if v := os.Getenv("TK_DB_DIR"); v != "" {
		c.Database.Dir = v
	}
	if v := os.Getenv("TK_DB_FILENAME"); v != "" {
		c.Database.Filename = v
	}
	if v := os.Getenv("TK_TIME_FORMAT"); v != "" {
		c.Display.TimeFormat = v
	}
	if v := os.Getenv("TK_DATE_ONLY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Display.DateOnly = b
		}
	}
	if v := os.Getenv("TK_APP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Application.Timeout = d
		}
	}
	if v := os.Getenv("TK_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Application.Verbose = b
		}
	}
}
