package cli

import (
	"context"
	"fmt"

	"timekeep/internal/api"
	"timekeep/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command. The session's segments go with it.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk delete <session-id>")
	}

	if err := c.api.DeleteSession(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("delete session", err)
	}

	fmt.Printf("Deleted session %s and its segments\n", args[0])
	return nil
}
