package cli

import (
	"context"
	"fmt"
	"strconv"

	"timekeep/internal/api"
	"timekeep/internal/config"
	"timekeep/internal/errors"
)

// EditCommand handles the edit command, which adjusts a finished or
// running session's recorded times or note.
type EditCommand struct {
	api          api.API
	config       *config.Config
	errorHandler *ErrorHandler
	startAt      string
	endAt        string
	note         *string
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		api:          app.api,
		config:       app.config,
		errorHandler: NewErrorHandler(),
	}
}

// SetStartAt sets the new start timestamp in epoch milliseconds
func (c *EditCommand) SetStartAt(value string) {
	c.startAt = value
}

// SetEndAt sets the new end timestamp in epoch milliseconds
func (c *EditCommand) SetEndAt(value string) {
	c.endAt = value
}

// SetNote sets the replacement note
func (c *EditCommand) SetNote(note string) {
	c.note = &note
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk edit <session-id> [--start-at ms] [--end-at ms] [--note text]")
	}
	sessionID := args[0]

	session, err := c.api.GetSession(ctx, sessionID)
	if err != nil {
		return c.errorHandler.Handle("edit session", err)
	}

	startAt := session.StartAt
	if c.startAt != "" {
		startAt, err = parseMillis("start-at", c.startAt)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
	}

	endAt := session.EndAt
	if c.endAt != "" {
		parsed, err := parseMillis("end-at", c.endAt)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		endAt = &parsed
	}

	updated, err := c.api.UpdateSessionTimes(ctx, sessionID, startAt, endAt, c.note)
	if err != nil {
		return c.errorHandler.Handle("edit session", err)
	}

	end := "in progress"
	if updated.EndAt != nil {
		end = formatTimestamp(*updated.EndAt, c.config)
	}
	fmt.Printf("Updated session %s: %s -> %s\n", updated.ID, formatTimestamp(updated.StartAt, c.config), end)
	return nil
}

// parseMillis parses a positive epoch-millisecond value
func parseMillis(field, value string) (int64, error) {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ms <= 0 {
		return 0, errors.NewInvalidInputError(field, value, "expected a positive epoch-millisecond timestamp")
	}
	return ms, nil
}
