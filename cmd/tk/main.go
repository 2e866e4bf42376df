package main

import (
	"fmt"
	"os"

	"timekeep/internal/api"
	"timekeep/internal/cli"
	"timekeep/internal/config"
	"timekeep/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	env := getEnvironment()
	logging.Debugf("environment: %s, database: %s\n", env, cfg.DatabasePath())

	repo, err := NewRepositoryFactory(env, cfg).CreateRepository()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	root := cli.NewRootCommand(api.New(repo), cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
