package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthBounds(t *testing.T) {
	loc := time.UTC

	t.Run("should cover the whole month with a 0-indexed month", func(t *testing.T) {
		// Month 5 is June.
		bounds := MonthBounds(2025, 5, loc)

		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, loc).UnixMilli(), bounds.Start)
		assert.Equal(t, time.Date(2025, time.June, 30, 23, 59, 59, 999000000, loc).UnixMilli(), bounds.End)
	})

	t.Run("should handle December", func(t *testing.T) {
		bounds := MonthBounds(2025, 11, loc)

		assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, loc).UnixMilli(), bounds.Start)
		assert.Equal(t, time.Date(2025, time.December, 31, 23, 59, 59, 999000000, loc).UnixMilli(), bounds.End)
	})

	t.Run("should handle a leap February", func(t *testing.T) {
		bounds := MonthBounds(2024, 1, loc)

		assert.Equal(t, time.Date(2024, time.February, 29, 23, 59, 59, 999000000, loc).UnixMilli(), bounds.End)
	})
}

func TestYearBounds(t *testing.T) {
	loc := time.UTC

	t.Run("should run from January 1st through the end day", func(t *testing.T) {
		endDay := time.Date(2025, time.June, 15, 13, 30, 0, 0, loc).UnixMilli()
		bounds := YearBounds(2025, endDay, loc)

		assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, loc).UnixMilli(), bounds.Start)
		assert.Equal(t, time.Date(2025, time.June, 15, 23, 59, 59, 999000000, loc).UnixMilli(), bounds.End)
	})
}

func TestLast7DaysBounds(t *testing.T) {
	loc := time.UTC

	t.Run("should cover seven calendar days ending today", func(t *testing.T) {
		now := time.Date(2025, time.June, 15, 13, 30, 0, 0, loc).UnixMilli()
		bounds := Last7DaysBounds(now, loc)

		assert.Equal(t, time.Date(2025, time.June, 9, 0, 0, 0, 0, loc).UnixMilli(), bounds.Start)
		assert.Equal(t, time.Date(2025, time.June, 15, 23, 59, 59, 999000000, loc).UnixMilli(), bounds.End)
	})

	t.Run("should cross a month boundary", func(t *testing.T) {
		now := time.Date(2025, time.June, 3, 8, 0, 0, 0, loc).UnixMilli()
		bounds := Last7DaysBounds(now, loc)

		assert.Equal(t, time.Date(2025, time.May, 28, 0, 0, 0, 0, loc).UnixMilli(), bounds.Start)
	})
}

func TestRangeBounds(t *testing.T) {
	loc := time.UTC

	t.Run("should run from the start day's midnight to the end day's last millisecond", func(t *testing.T) {
		bounds, err := RangeBounds("2025-06-01", "2025-06-10", loc)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, loc).UnixMilli(), bounds.Start)
		assert.Equal(t, time.Date(2025, time.June, 10, 23, 59, 59, 999000000, loc).UnixMilli(), bounds.End)
	})

	t.Run("should cover a single day when both dates match", func(t *testing.T) {
		bounds, err := RangeBounds("2025-06-01", "2025-06-01", loc)
		require.NoError(t, err)

		assert.Equal(t, int64(24*60*60*1000-1), bounds.End-bounds.Start)
	})

	t.Run("should reject malformed dates", func(t *testing.T) {
		_, err := RangeBounds("June 1st", "2025-06-10", loc)
		assert.Error(t, err)

		_, err = RangeBounds("2025-06-01", "10/06/2025", loc)
		assert.Error(t, err)
	})
}
