package cli

import (
	"context"
	"fmt"

	"timekeep/internal/api"
	"timekeep/internal/config"
)

// CurrentCommand handles the current command
type CurrentCommand struct {
	api          api.API
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewCurrentCommand creates a new current command handler
func NewCurrentCommand(app *App) *CurrentCommand {
	return &CurrentCommand{
		api:          app.api,
		config:       app.config,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the current command
func (c *CurrentCommand) Execute(ctx context.Context, args []string) error {
	state, err := c.api.Current(ctx, nil)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Println("No session is in progress")
			return nil
		}
		return c.errorHandler.Handle("show current session", err)
	}

	project := "unassigned"
	if state.Project != nil {
		project = state.Project.Name
	}

	fmt.Printf("Current session: %s (started %s)\n", project, relativeTime(state.Session.StartAt))
	fmt.Printf("  Elapsed: %s across %d segment(s)\n", formatDuration(state.ElapsedMs), len(state.Segments))
	if state.Session.Note != "" {
		fmt.Printf("  Note: %s\n", state.Session.Note)
	}
	return nil
}
