package cli

import (
	"context"
	"fmt"

	"timekeep/internal/api"
	"timekeep/internal/errors"
)

// SeedCommand handles the seed command, a development helper that fills
// the store with random finished sessions.
type SeedCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	months       int
}

// NewSeedCommand creates a new seed command handler
func NewSeedCommand(app *App) *SeedCommand {
	return &SeedCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		months:       6,
	}
}

// SetMonths sets how many trailing months to fill
func (c *SeedCommand) SetMonths(months int) {
	if months > 0 {
		c.months = months
	}
}

// Execute runs the seed command
func (c *SeedCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk seed [--months n]")
	}

	if err := c.api.SeedRandomData(ctx, c.months); err != nil {
		return c.errorHandler.Handle("seed data", err)
	}

	fmt.Printf("Seeded random sessions over the past %d month(s)\n", c.months)
	return nil
}
