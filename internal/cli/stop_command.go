package cli

import (
	"context"
	"fmt"

	"timekeep/internal/api"
	"timekeep/internal/errors"
)

// StopCommand handles the stop command
type StopCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk stop")
	}

	session, err := c.api.StopSession(ctx)
	if err != nil {
		if c.errorHandler.IsConflictError(err) {
			fmt.Println("No session is in progress")
			return nil
		}
		return c.errorHandler.Handle("stop session", err)
	}

	durationMs, err := c.api.SessionDurationMs(ctx, session.ID)
	if err != nil {
		return c.errorHandler.Handle("stop session", err)
	}

	fmt.Printf("Stopped session after %s\n", formatDuration(durationMs))
	return nil
}
