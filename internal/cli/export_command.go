package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"timekeep/internal/api"
	"timekeep/internal/errors"
	"timekeep/internal/fsutil"
)

// ExportCommand handles the export command
type ExportCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	outputDir    string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
		outputDir:    ".",
	}
}

// SetOutputDir sets the directory the backup file is written to
func (c *ExportCommand) SetOutputDir(dir string) {
	if dir != "" {
		c.outputDir = dir
	}
}

// Execute runs the export command, writing the snapshot atomically so an
// interrupted export never leaves a truncated backup behind.
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk export [--dir path]")
	}

	data, filename, err := c.api.ExportBackup(ctx)
	if err != nil {
		return c.errorHandler.Handle("export backup", err)
	}

	path := filepath.Join(c.outputDir, filename)
	if err := fsutil.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	fmt.Printf("Exported backup to %s\n", path)
	return nil
}
