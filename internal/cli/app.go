package cli

import (
	"fmt"
	"os"
	"time"

	"timekeep/internal/api"
	"timekeep/internal/config"
	"timekeep/internal/repository/sqlite"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App bundles the business API with the resolved configuration for the
// command handlers.
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// NewAppWithDefaultRepository creates a CLI application backed by the
// SQLite database at the configured path, creating the directory first.
func NewAppWithDefaultRepository(cfg *config.Config) (*App, error) {
	if err := os.MkdirAll(cfg.Database.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo, err := sqlite.New(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return NewApp(api.New(repo), cfg), nil
}
