package api

import (
	"context"
	"fmt"

	"timekeep/internal/domain"
	"timekeep/internal/errors"
	"timekeep/internal/repository/sqlite"
)

// StartSession opens a new recording session with its first segment.
// At most one session may be in progress system-wide; starting while one
// is running is a conflict, not an implicit stop. When no project is
// given, the default-start project (if designated) is preselected.
func (a *apiImpl) StartSession(ctx context.Context, projectID *string, note string) (*domain.Session, error) {
	active, err := a.repo.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, errors.NewConflictError("a session is already in progress").WithContext("session_id", active.ID)
	}

	if projectID != nil {
		if _, err := a.GetProject(ctx, *projectID); err != nil {
			return nil, err
		}
	} else {
		defaultProject, err := a.defaultStartProject(ctx)
		if err != nil {
			return nil, err
		}
		if defaultProject != nil {
			projectID = &defaultProject.ID
		}
	}

	now := nowMillis()
	dbSession := &sqlite.Session{StartAt: now, Note: note}
	if err := a.repo.CreateSession(ctx, dbSession); err != nil {
		return nil, err
	}

	dbSegment := &sqlite.Segment{
		SessionID: dbSession.ID,
		ProjectID: projectID,
		StartAt:   now,
	}
	if err := a.repo.CreateSegment(ctx, dbSegment); err != nil {
		return nil, err
	}

	session := a.mapper.Session.FromDatabase(*dbSession)
	return &session, nil
}

// SwitchSegment closes the active session's open segment and opens a new
// one tagged to the given project (nil for unassigned work). This is the
// only write path that opens a segment on a running session, which keeps
// the one-open-segment-per-session invariant at the boundary instead of
// inside the math.
func (a *apiImpl) SwitchSegment(ctx context.Context, projectID *string) (*domain.Segment, error) {
	active, err := a.repo.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, errors.NewConflictError("no session is in progress")
	}

	if projectID != nil {
		if _, err := a.GetProject(ctx, *projectID); err != nil {
			return nil, err
		}
	}

	now := nowMillis()
	open, err := a.repo.GetOpenSegment(ctx, active.ID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		open.EndAt = &now
		if err := a.repo.UpdateSegment(ctx, open); err != nil {
			return nil, err
		}
	}

	dbSegment := &sqlite.Segment{
		SessionID: active.ID,
		ProjectID: projectID,
		StartAt:   now,
	}
	if err := a.repo.CreateSegment(ctx, dbSegment); err != nil {
		return nil, err
	}

	segment := a.mapper.Segment.FromDatabase(*dbSegment)
	return &segment, nil
}

// StopSession closes the in-progress session and its open segment at the
// same instant. Closing is monotonic: a stopped session never reopens.
func (a *apiImpl) StopSession(ctx context.Context) (*domain.Session, error) {
	active, err := a.repo.GetActiveSession(ctx)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, errors.NewConflictError("no session is in progress")
	}

	now := nowMillis()
	open, err := a.repo.GetOpenSegment(ctx, active.ID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		open.EndAt = &now
		if err := a.repo.UpdateSegment(ctx, open); err != nil {
			return nil, err
		}
	}

	active.EndAt = &now
	if err := a.repo.UpdateSession(ctx, active); err != nil {
		return nil, err
	}

	session := a.mapper.Session.FromDatabase(*active)
	return &session, nil
}

// GetSession retrieves a session by id.
func (a *apiImpl) GetSession(ctx context.Context, id string) (*domain.Session, error) {
	if err := a.sessionValidator.ValidateID(id); err != nil {
		return nil, err
	}

	dbSession, err := a.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	session := a.mapper.Session.FromDatabase(*dbSession)
	return &session, nil
}

// ListSessions retrieves all sessions ordered by start time.
func (a *apiImpl) ListSessions(ctx context.Context) ([]*domain.Session, error) {
	dbSessions, err := a.repo.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Session.FromDatabaseSlice(dbSessions), nil
}

// ListSessionSegments retrieves a session's segments ordered by start time.
func (a *apiImpl) ListSessionSegments(ctx context.Context, sessionID string) ([]*domain.Segment, error) {
	if err := a.sessionValidator.ValidateID(sessionID); err != nil {
		return nil, err
	}

	dbSegments, err := a.repo.ListSegmentsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return a.mapper.Segment.FromDatabaseSlice(dbSegments), nil
}

// UpdateSessionTimes edits a session's envelope and note, refusing edits
// that would overlap another session. A finished session cannot be
// reopened (closing is monotonic). The session's segments are not
// adjusted; the envelope and the segment sum may legitimately diverge.
func (a *apiImpl) UpdateSessionTimes(ctx context.Context, id string, startAt int64, endAt *int64, note *string) (*domain.Session, error) {
	if err := a.sessionValidator.ValidateID(id); err != nil {
		return nil, err
	}
	if err := a.sessionValidator.ValidateInterval(startAt, endAt); err != nil {
		return nil, err
	}

	dbSession, err := a.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if dbSession.EndAt != nil && endAt == nil {
		return nil, errors.NewValidationError("a finished session cannot be reopened", nil)
	}

	queryEnd := nowMillis()
	if endAt != nil {
		queryEnd = *endAt
	}
	overlapping, err := a.GetSessionsOverlapping(ctx, startAt, queryEnd, &id)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, errors.NewConflictError(
			fmt.Sprintf("the new times overlap %d existing session(s)", len(overlapping))).
			WithContext("first_overlap", overlapping[0].ID)
	}

	dbSession.StartAt = startAt
	dbSession.EndAt = endAt
	if note != nil {
		dbSession.Note = *note
	}
	if err := a.repo.UpdateSession(ctx, dbSession); err != nil {
		return nil, err
	}

	session := a.mapper.Session.FromDatabase(*dbSession)
	return &session, nil
}

// DeleteSession removes a session and all its segments as one
// all-or-nothing unit.
func (a *apiImpl) DeleteSession(ctx context.Context, id string) error {
	if err := a.sessionValidator.ValidateID(id); err != nil {
		return err
	}
	return a.repo.DeleteSessionCascade(ctx, id)
}

// GetSessionsOverlapping returns the sessions whose effective interval
// intersects [startAt, endAt), excluding the given session id when set.
// In-progress sessions are evaluated against now at call time, so the
// result is only valid at the instant of the call.
func (a *apiImpl) GetSessionsOverlapping(ctx context.Context, startAt, endAt int64, excludeSessionID *string) ([]*domain.Session, error) {
	sessions, err := a.ListSessions(ctx)
	if err != nil {
		return nil, err
	}

	now := nowMillis()
	var overlapping []*domain.Session
	for _, s := range sessions {
		if excludeSessionID != nil && s.ID == *excludeSessionID {
			continue
		}
		if s.Overlaps(startAt, endAt, now) {
			overlapping = append(overlapping, s)
		}
	}
	return overlapping, nil
}
