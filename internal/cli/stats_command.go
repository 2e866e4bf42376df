package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"timekeep/internal/api"
	"timekeep/internal/errors"
	"timekeep/internal/stats"
)

// StatsCommand handles the stats subcommands
type StatsCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteMonth shows day totals for a calendar month. With no argument
// the current month is used; otherwise the argument is YYYY-MM.
func (c *StatsCommand) ExecuteMonth(ctx context.Context, args []string) error {
	now := timeNow()
	year, month := now.Year(), int(now.Month())-1
	if len(args) == 1 {
		parsed, err := time.ParseInLocation("2006-01", args[0], time.Local)
		if err != nil {
			return c.errorHandler.HandleSimple(
				errors.NewInvalidInputError("month", args[0], "expected YYYY-MM"))
		}
		year, month = parsed.Year(), int(parsed.Month())-1
	} else if len(args) > 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk stats month [YYYY-MM]")
	}

	return c.show(ctx, stats.MonthBounds(year, month, time.Local))
}

// ExecuteYear shows day totals for the year to date. With no argument
// the current year is used.
func (c *StatsCommand) ExecuteYear(ctx context.Context, args []string) error {
	now := timeNow()
	year := now.Year()
	if len(args) == 1 {
		parsed, err := time.ParseInLocation("2006", args[0], time.Local)
		if err != nil {
			return c.errorHandler.HandleSimple(
				errors.NewInvalidInputError("year", args[0], "expected YYYY"))
		}
		year = parsed.Year()
	} else if len(args) > 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk stats year [YYYY]")
	}

	return c.show(ctx, stats.YearBounds(year, now.UnixMilli(), time.Local))
}

// ExecuteWeek shows day totals for the trailing seven days
func (c *StatsCommand) ExecuteWeek(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk stats week")
	}
	return c.show(ctx, stats.Last7DaysBounds(timeNow().UnixMilli(), time.Local))
}

// ExecuteRange shows day totals between two dates, inclusive
func (c *StatsCommand) ExecuteRange(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk stats range <YYYY-MM-DD> <YYYY-MM-DD>")
	}

	bounds, err := stats.RangeBounds(args[0], args[1], time.Local)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	return c.show(ctx, bounds)
}

func (c *StatsCommand) show(ctx context.Context, bounds stats.Bounds) error {
	totals, err := c.api.DayTotals(ctx, bounds)
	if err != nil {
		return c.errorHandler.Handle("compute stats", err)
	}

	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)

	var grandTotal int64
	for _, day := range days {
		ms := totals[day]
		grandTotal += ms
		if ms == 0 {
			continue
		}
		fmt.Printf("%s  %s\n", day, formatDuration(ms))
	}

	if grandTotal == 0 {
		fmt.Println("No time recorded in this range")
		return nil
	}
	fmt.Printf("Total: %s over %d day(s)\n", formatDuration(grandTotal), len(days))
	return nil
}
