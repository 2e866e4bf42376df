package domain

// Segment is a sub-interval of a session, optionally tagged to a project.
// Segments are the true unit of duration accounting. ProjectID == nil
// means unassigned work; EndAt == nil marks the currently open segment.
// Segments need not be contiguous or non-overlapping; the accounting
// code sums whatever intervals exist.
type Segment struct {
	ID        string  `json:"id"`
	SessionID string  `json:"sessionId"`
	ProjectID *string `json:"projectId"`
	StartAt   int64   `json:"startAt"`
	EndAt     *int64  `json:"endAt"`
}

// NewSegment creates a new open Segment for the given session.
func NewSegment(sessionID string, projectID *string, startAt int64) Segment {
	return Segment{
		SessionID: sessionID,
		ProjectID: projectID,
		StartAt:   startAt,
	}
}

// IsOpen returns true if the segment has no end time yet.
func (s Segment) IsOpen() bool {
	return s.EndAt == nil
}

// EffectiveEnd returns EndAt for a closed segment, or the supplied
// reference time for an open one.
func (s Segment) EffectiveEnd(now int64) int64 {
	if s.EndAt != nil {
		return *s.EndAt
	}
	return now
}

// IsValid checks if the segment has valid data.
func (s Segment) IsValid() bool {
	if s.SessionID == "" || s.StartAt <= 0 {
		return false
	}
	if s.EndAt != nil && *s.EndAt < s.StartAt {
		return false
	}
	return true
}
