package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"timekeep/internal/config"
)

// formatDuration renders a millisecond total as h/m/s, dropping leading
// zero units.
func formatDuration(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

// formatTimestamp renders an epoch-millisecond instant in the configured
// display format.
func formatTimestamp(ms int64, cfg *config.Config) string {
	t := time.UnixMilli(ms)
	if cfg != nil && cfg.Display.DateOnly {
		return t.Format("2006-01-02")
	}
	format := "2006-01-02 15:04"
	if cfg != nil && cfg.Display.TimeFormat != "" {
		format = cfg.Display.TimeFormat
	}
	return t.Format(format)
}

// relativeTime renders an epoch-millisecond instant as a human-relative
// phrase like "2 hours ago".
func relativeTime(ms int64) string {
	return humanize.Time(time.UnixMilli(ms))
}
