package domain

// Session is a top-level recorded time span. EndAt == nil means the
// session is still in progress; at most one session may be in progress
// at any time (enforced at the API layer, not here).
//
// A session's duration is always the sum of its segments' durations,
// never EndAt - StartAt of the session itself.
type Session struct {
	ID      string `json:"id"`
	StartAt int64  `json:"startAt"`
	EndAt   *int64 `json:"endAt"`
	Note    string `json:"note"`
}

// NewSession creates a new in-progress Session starting at the given time.
func NewSession(startAt int64) Session {
	return Session{StartAt: startAt}
}

// IsOpen returns true if the session is still in progress.
func (s Session) IsOpen() bool {
	return s.EndAt == nil
}

// EffectiveEnd returns EndAt for a finished session, or the supplied
// reference time for an in-progress one.
func (s Session) EffectiveEnd(now int64) int64 {
	if s.EndAt != nil {
		return *s.EndAt
	}
	return now
}

// Overlaps reports whether the session's effective interval intersects
// [startAt, endAt) using half-open comparison: two spans touching only at
// an endpoint do not overlap.
func (s Session) Overlaps(startAt, endAt, now int64) bool {
	return startAt < s.EffectiveEnd(now) && s.StartAt < endAt
}

// IsValid checks if the session has valid data.
func (s Session) IsValid() bool {
	if s.StartAt <= 0 {
		return false
	}
	if s.EndAt != nil && *s.EndAt < s.StartAt {
		return false
	}
	return true
}
