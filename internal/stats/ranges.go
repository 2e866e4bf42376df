package stats

import (
	"time"

	"timekeep/internal/errors"
)

const dateLayout = "2006-01-02"

// Bounds is an inclusive timestamp range. End values always land on
// 23:59:59.999 local, matching the closed-interval day convention.
type Bounds struct {
	Start int64
	End   int64
}

// MonthBounds returns the range covering a whole calendar month, from the
// 1st at midnight to the last day at 23:59:59.999. The month is 0-indexed
// (0 = January), matching the calling convention of the stats views.
func MonthBounds(year, month int, loc *time.Location) Bounds {
	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, loc)
	// Day 0 of the following month normalizes to the month's last day.
	end := time.Date(year, time.Month(month+2), 0, 23, 59, 59, 999000000, loc)
	return Bounds{Start: start.UnixMilli(), End: end.UnixMilli()}
}

// YearBounds returns the year-to-date range: January 1st at midnight
// through the local end of the day containing endDay (usually today).
func YearBounds(year int, endDay int64, loc *time.Location) Bounds {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	d := time.UnixMilli(endDay).In(loc)
	end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999000000, loc)
	return Bounds{Start: start.UnixMilli(), End: end.UnixMilli()}
}

// Last7DaysBounds returns the trailing-week range: local midnight six days
// before the day containing now, through that day's local end.
func Last7DaysBounds(now int64, loc *time.Location) Bounds {
	d := time.UnixMilli(now).In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day()-6, 0, 0, 0, 0, loc)
	end := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999000000, loc)
	return Bounds{Start: start.UnixMilli(), End: end.UnixMilli()}
}

// RangeBounds returns the range from the first date's local start through
// the second date's local end. Both arguments are YYYY-MM-DD strings.
func RangeBounds(startDate, endDate string, loc *time.Location) (Bounds, error) {
	s, err := time.ParseInLocation(dateLayout, startDate, loc)
	if err != nil {
		return Bounds{}, errors.NewInvalidInputError("start date", startDate, "expected YYYY-MM-DD")
	}
	e, err := time.ParseInLocation(dateLayout, endDate, loc)
	if err != nil {
		return Bounds{}, errors.NewInvalidInputError("end date", endDate, "expected YYYY-MM-DD")
	}
	end := time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, 999000000, loc)
	return Bounds{Start: s.UnixMilli(), End: end.UnixMilli()}, nil
}
