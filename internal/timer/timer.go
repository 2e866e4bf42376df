// Package timer holds the pure interval math for live timers and session
// durations. Every function takes "now" explicitly so callers stay
// deterministic and testable; nothing here reads the clock or the store.
package timer

import (
	"timekeep/internal/domain"
)

// ComputeElapsedMs returns the total elapsed milliseconds for a session's
// segments at the given reference time.
//
// The first segment with no end time is treated as the open one. Closed
// segments contribute their full span; the open segment contributes up to
// pausedAt when a pause is active, else up to now. Any further segment
// without an end time is malformed data and contributes zero rather than
// failing. A non-nil pausedAt freezes the result: increasing now does not
// change the total.
func ComputeElapsedMs(segments []*domain.Segment, pausedAt *int64, now int64) int64 {
	effectiveNow := now
	if pausedAt != nil {
		effectiveNow = *pausedAt
	}

	openID := ""
	for _, s := range segments {
		if s.EndAt == nil {
			openID = s.ID
			break
		}
	}

	var total int64
	for _, s := range segments {
		end := s.StartAt
		switch {
		case s.EndAt != nil:
			end = *s.EndAt
		case s.ID == openID:
			end = effectiveNow
		}
		total += end - s.StartAt
	}
	return total
}

// ComputeSessionDurationMs returns the authoritative duration of a session:
// the sum over its segments of max(0, effectiveEnd - startAt), where an
// open segment runs to now. The per-segment floor of zero guards against
// clock skew producing a negative span. There is no pause concept here.
func ComputeSessionDurationMs(segments []*domain.Segment, now int64) int64 {
	var total int64
	for _, s := range segments {
		end := s.EffectiveEnd(now)
		if end > s.StartAt {
			total += end - s.StartAt
		}
	}
	return total
}
