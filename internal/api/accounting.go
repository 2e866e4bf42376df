package api

import (
	"context"

	"timekeep/internal/domain"
	"timekeep/internal/errors"
	"timekeep/internal/stats"
	"timekeep/internal/timer"
)

// Current returns the in-progress session with its live elapsed total.
// A non-nil pausedAt freezes the open segment's contribution at that
// instant without touching stored data.
func (a *apiImpl) Current(ctx context.Context, pausedAt *int64) (*CurrentState, error) {
	active, err := a.repo.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, errors.NewNotFoundError("session", "in progress")
	}

	dbSegments, err := a.repo.ListSegmentsBySession(ctx, active.ID)
	if err != nil {
		return nil, err
	}
	segments := a.mapper.Segment.FromDatabaseSlice(dbSegments)

	var project *domain.Project
	for _, seg := range segments {
		if seg.IsOpen() && seg.ProjectID != nil {
			project, err = a.GetProject(ctx, *seg.ProjectID)
			if err != nil {
				return nil, err
			}
			break
		}
	}

	session := a.mapper.Session.FromDatabase(*active)
	return &CurrentState{
		Session:   &session,
		Segments:  segments,
		Project:   project,
		ElapsedMs: timer.ComputeElapsedMs(segments, pausedAt, nowMillis()),
	}, nil
}

// SessionDurationMs returns the authoritative duration of a session: the
// sum of its segments' spans, never the session envelope itself.
func (a *apiImpl) SessionDurationMs(ctx context.Context, id string) (int64, error) {
	segments, err := a.ListSessionSegments(ctx, id)
	if err != nil {
		return 0, err
	}
	return timer.ComputeSessionDurationMs(segments, nowMillis()), nil
}

// DayTotals buckets all recorded time into local calendar days over the
// given range. Totals are segment-sourced; sessions with no segments
// contribute nothing.
func (a *apiImpl) DayTotals(ctx context.Context, bounds stats.Bounds) (map[string]int64, error) {
	dbSessions, err := a.repo.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	dbSegments, err := a.repo.ListSegments(ctx)
	if err != nil {
		return nil, err
	}

	sessions := a.mapper.Session.FromDatabaseSlice(dbSessions)
	segmentsBySession := make(map[string][]*domain.Segment)
	for _, dbSegment := range dbSegments {
		seg := a.mapper.Segment.FromDatabase(*dbSegment)
		segmentsBySession[seg.SessionID] = append(segmentsBySession[seg.SessionID], &seg)
	}

	return stats.AggregateSegmentsByDay(sessions, segmentsBySession, bounds.Start, bounds.End, nowMillis(), a.loc), nil
}
