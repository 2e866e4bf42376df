package cli

import (
	"context"
	"fmt"
	"strings"

	"timekeep/internal/api"
)

// StartCommand handles the start command
type StartCommand struct {
	api          api.API
	errorHandler *ErrorHandler
	note         string
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// SetNote attaches a note to the session being started
func (c *StartCommand) SetNote(note string) {
	c.note = note
}

// Execute runs the start command. With no arguments the session starts on
// the default-start project, or unassigned when none is designated.
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	var projectID *string
	if len(args) > 0 {
		name := strings.Join(args, " ")
		project, err := c.api.FindProjectByName(ctx, name)
		if err != nil {
			return c.errorHandler.Handle("start session", err)
		}
		projectID = &project.ID
	}

	session, err := c.api.StartSession(ctx, projectID, c.note)
	if err != nil {
		return c.errorHandler.Handle("start session", err)
	}

	state, err := c.api.Current(ctx, nil)
	if err != nil {
		return c.errorHandler.Handle("start session", err)
	}

	if state.Project != nil {
		fmt.Printf("Started session on %s (%s)\n", state.Project.Name, session.ID)
	} else {
		fmt.Printf("Started unassigned session (%s)\n", session.ID)
	}
	return nil
}
