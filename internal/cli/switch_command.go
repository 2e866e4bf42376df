package cli

import (
	"context"
	"fmt"
	"strings"

	"timekeep/internal/api"
)

// SwitchCommand handles the switch command
type SwitchCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewSwitchCommand creates a new switch command handler
func NewSwitchCommand(app *App) *SwitchCommand {
	return &SwitchCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the switch command: it closes the running segment and
// opens a new one against the named project, without ending the session.
// With no arguments the new segment is unassigned.
func (c *SwitchCommand) Execute(ctx context.Context, args []string) error {
	var projectID *string
	var projectName string
	if len(args) > 0 {
		name := strings.Join(args, " ")
		project, err := c.api.FindProjectByName(ctx, name)
		if err != nil {
			return c.errorHandler.Handle("switch project", err)
		}
		projectID = &project.ID
		projectName = project.Name
	}

	if _, err := c.api.SwitchSegment(ctx, projectID); err != nil {
		return c.errorHandler.Handle("switch project", err)
	}

	if projectID != nil {
		fmt.Printf("Switched to %s\n", projectName)
	} else {
		fmt.Println("Switched to unassigned time")
	}
	return nil
}
