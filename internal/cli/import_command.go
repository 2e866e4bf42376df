package cli

import (
	"context"
	"fmt"
	"os"

	"timekeep/internal/api"
	"timekeep/internal/errors"
)

// ImportCommand handles the import command
type ImportCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	force        bool
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// SetForce allows the import to overwrite existing data without the
// confirmation error.
func (c *ImportCommand) SetForce(force bool) {
	c.force = force
}

// Execute runs the import command. A rejected snapshot leaves the store
// untouched; the restore itself is all-or-nothing.
func (c *ImportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk import <backup.json> [--force]")
	}

	active, err := c.api.HasActiveSession(ctx)
	if err != nil {
		return c.errorHandler.Handle("import backup", err)
	}
	if active {
		return c.errorHandler.HandleSimple(
			errors.NewConflictError("a session is in progress; stop it before importing"))
	}

	if !c.force {
		hasData, err := c.api.HasAnyData(ctx)
		if err != nil {
			return c.errorHandler.Handle("import backup", err)
		}
		if hasData {
			return c.errorHandler.HandleSimple(
				errors.NewConflictError("importing replaces all existing data; rerun with --force to continue"))
		}
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	if err := c.api.ImportBackup(ctx, data); err != nil {
		switch c.errorHandler.GetErrorCode(err) {
		case errors.CodeInvalidApp, errors.CodeInvalidVersion,
			errors.CodeInvalidStructure, errors.CodeInvalidRelations:
			// Rejection is the verdict on this file, not an operational
			// failure; report it without the failed-to wrapper.
			return c.errorHandler.HandleSimple(err)
		}
		return c.errorHandler.Handle("import backup", err)
	}

	fmt.Printf("Imported backup from %s\n", args[0])
	return nil
}
