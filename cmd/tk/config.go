package main

import (
	"fmt"
	"os"

	"timekeep/internal/config"
	"timekeep/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
	cfg *config.Config
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment, cfg *config.Config) *RepositoryFactory {
	return &RepositoryFactory{env: env, cfg: cfg}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository() (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		// A local database file, easy to inspect and throw away.
		return rf.open("timekeep.db")
	case Testing:
		return rf.open(":memory:")
	default:
		if err := os.MkdirAll(rf.cfg.Database.Dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		return rf.open(rf.cfg.DatabasePath())
	}
}

func (rf *RepositoryFactory) open(dbPath string) (sqlite.Repository, error) {
	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database at %s: %w", dbPath, err)
	}
	return repo, nil
}

// getEnvironment determines the current environment from TK_ENV,
// defaulting to production.
func getEnvironment() Environment {
	switch os.Getenv("TK_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	default:
		return Production
	}
}
