package cli

import (
	"context"
	"fmt"

	"timekeep/internal/api"
	"timekeep/internal/config"
	"timekeep/internal/domain"
)

// SessionsCommand handles the sessions listing command
type SessionsCommand struct {
	api          api.API
	config       *config.Config
	errorHandler *ErrorHandler
	limit        int
}

// NewSessionsCommand creates a new sessions command handler
func NewSessionsCommand(app *App) *SessionsCommand {
	return &SessionsCommand{
		api:          app.api,
		config:       app.config,
		errorHandler: NewErrorHandler(),
	}
}

// SetLimit caps the number of sessions displayed, most recent first.
// Zero means no cap.
func (c *SessionsCommand) SetLimit(limit int) {
	c.limit = limit
}

// Execute runs the sessions command
func (c *SessionsCommand) Execute(ctx context.Context, args []string) error {
	sessions, err := c.api.ListSessions(ctx)
	if err != nil {
		return c.errorHandler.Handle("list sessions", err)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded")
		return nil
	}

	// Most recent first for display.
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	if c.limit > 0 && len(sessions) > c.limit {
		sessions = sessions[:c.limit]
	}

	for _, session := range sessions {
		if err := c.printSession(ctx, session); err != nil {
			return err
		}
	}
	return nil
}

func (c *SessionsCommand) printSession(ctx context.Context, session *domain.Session) error {
	durationMs, err := c.api.SessionDurationMs(ctx, session.ID)
	if err != nil {
		return c.errorHandler.Handle("list sessions", err)
	}

	end := "in progress"
	if session.EndAt != nil {
		end = formatTimestamp(*session.EndAt, c.config)
	}

	fmt.Printf("%s  %s -> %s  %s", session.ID, formatTimestamp(session.StartAt, c.config), end, formatDuration(durationMs))
	if session.Note != "" {
		fmt.Printf("  (%s)", session.Note)
	}
	fmt.Println()
	return nil
}
