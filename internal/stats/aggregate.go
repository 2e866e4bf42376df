// Package stats buckets recorded intervals into local calendar days and
// resolves the canonical reporting ranges (month, year to date, trailing
// week, explicit date range).
//
// Days are closed intervals: each day runs from local midnight to
// midnight + 24h - 1ms. Adjacent days therefore partition a span without
// double-counting, at the cost of one millisecond at each boundary an
// interval crosses. Displayed totals depend on this convention; do not
// change it to half-open days.
package stats

import (
	"time"

	"timekeep/internal/domain"
)

const dayMs = int64(24 * 60 * 60 * 1000)

// DateKey formats a timestamp as the YYYY-MM-DD bucket key for its local
// calendar day.
func DateKey(ts int64, loc *time.Location) string {
	return time.UnixMilli(ts).In(loc).Format("2006-01-02")
}

// AggregateSessionsByDay buckets session envelopes into calendar-day
// totals over [rangeStart, rangeEnd]. Every day whose local midnight falls
// in the range appears in the result, with zero for days nothing touches.
// An in-progress session runs to now. A session crossing midnight is split
// across the days it spans.
func AggregateSessionsByDay(sessions []*domain.Session, rangeStart, rangeEnd, now int64, loc *time.Location) map[string]int64 {
	out := make(map[string]int64)
	forEachDay(rangeStart, rangeEnd, loc, func(dayStart, dayEnd int64, key string) {
		var ms int64
		for _, s := range sessions {
			ms += overlapMs(s.StartAt, s.EffectiveEnd(now), dayStart, dayEnd)
		}
		out[key] = ms
	})
	return out
}

// AggregateSegmentsByDay buckets segment time into calendar-day totals,
// honoring the invariant that duration is always segment-sourced: a
// session with no segments contributes nothing, even when its envelope
// spans the range.
func AggregateSegmentsByDay(sessions []*domain.Session, segmentsBySession map[string][]*domain.Segment, rangeStart, rangeEnd, now int64, loc *time.Location) map[string]int64 {
	out := make(map[string]int64)
	forEachDay(rangeStart, rangeEnd, loc, func(dayStart, dayEnd int64, key string) {
		var ms int64
		for _, s := range sessions {
			for _, seg := range segmentsBySession[s.ID] {
				ms += overlapMs(seg.StartAt, seg.EffectiveEnd(now), dayStart, dayEnd)
			}
		}
		out[key] = ms
	})
	return out
}

// forEachDay visits every local calendar day from the day containing
// rangeStart to the day containing rangeEnd, inclusive.
func forEachDay(rangeStart, rangeEnd int64, loc *time.Location, visit func(dayStart, dayEnd int64, key string)) {
	start := time.UnixMilli(rangeStart).In(loc)
	end := time.UnixMilli(rangeEnd).In(loc)

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, loc)

	for !day.After(last) {
		dayStart := day.UnixMilli()
		visit(dayStart, dayStart+dayMs-1, day.Format("2006-01-02"))
		day = day.AddDate(0, 0, 1)
	}
}

// overlapMs returns the length of the intersection of [start, end] with
// the day bucket [dayStart, dayEnd], or zero when they do not intersect.
// A degenerate interval (end <= start) contributes zero rather than
// failing.
func overlapMs(start, end, dayStart, dayEnd int64) int64 {
	lo := max(start, dayStart)
	hi := min(end, dayEnd)
	if hi > lo {
		return hi - lo
	}
	return 0
}
