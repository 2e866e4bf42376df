// Package backup implements the versioned JSON snapshot format, the only
// durable interchange contract of the application. Export and import must
// round-trip exactly for finished sessions, their segments, and all
// projects.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"timekeep/internal/domain"
	"timekeep/internal/errors"
	"timekeep/internal/repository/sqlite"
)

// AppID is the fixed application identifier embedded in every snapshot.
// Snapshots carrying any other value are rejected at import.
const AppID = "minimalist-time-tracker"

// ExportFormatVersion is the only snapshot version this codec reads or
// writes. There is no forward or backward compatibility: any mismatch is
// rejected.
const ExportFormatVersion = 1

// Snapshot is the self-describing backup payload.
type Snapshot struct {
	App                 string           `json:"app"`
	ExportFormatVersion int              `json:"exportFormatVersion"`
	ExportedAt          int64            `json:"exportedAt"`
	Projects            []domain.Project `json:"projects"`
	Sessions            []domain.Session `json:"sessions"`
	Segments            []domain.Segment `json:"segments"`
}

// Filename returns the conventional backup filename for the given time,
// e.g. minimalist-time-tracker-backup-2026-08-28.json.
func Filename(now time.Time) string {
	return fmt.Sprintf("%s-backup-%s.json", AppID, now.Format("2006-01-02"))
}

// BuildSnapshot assembles a snapshot from the store. Only finished
// sessions and their segments are included; an in-progress session has
// no final duration yet and is silently excluded together with its
// segments. All projects are included regardless of archived state.
func BuildSnapshot(ctx context.Context, repo sqlite.Repository, now int64) (*Snapshot, error) {
	mapper := domain.NewMapper()

	dbProjects, err := repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	dbSessions, err := repo.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	dbSegments, err := repo.ListSegments(ctx)
	if err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(dbProjects))
	for _, p := range dbProjects {
		projects = append(projects, mapper.Project.FromDatabase(*p))
	}

	finished := make([]domain.Session, 0, len(dbSessions))
	finishedIDs := make(map[string]bool)
	for _, s := range dbSessions {
		if s.EndAt == nil {
			continue
		}
		finished = append(finished, mapper.Session.FromDatabase(*s))
		finishedIDs[s.ID] = true
	}

	segments := make([]domain.Segment, 0, len(dbSegments))
	for _, seg := range dbSegments {
		if finishedIDs[seg.SessionID] {
			segments = append(segments, mapper.Segment.FromDatabase(*seg))
		}
	}

	return &Snapshot{
		App:                 AppID,
		ExportFormatVersion: ExportFormatVersion,
		ExportedAt:          now,
		Projects:            projects,
		Sessions:            finished,
		Segments:            segments,
	}, nil
}

// Marshal serializes a snapshot as indented UTF-8 JSON.
func Marshal(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.NewValidationError("failed to serialize snapshot", err)
	}
	return data, nil
}

// Parse validates a snapshot payload and returns it. Validation fails
// closed, stopping at the first violation; no store mutation happens
// here, so a rejected import leaves existing data untouched.
func Parse(data []byte) (*Snapshot, error) {
	var raw struct {
		App                 string          `json:"app"`
		ExportFormatVersion int             `json:"exportFormatVersion"`
		ExportedAt          int64           `json:"exportedAt"`
		Projects            json.RawMessage `json:"projects"`
		Sessions            json.RawMessage `json:"sessions"`
		Segments            json.RawMessage `json:"segments"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewImportError(errors.CodeInvalidStructure, "backup file is not a valid snapshot object").WithContext("cause", err.Error())
	}

	if raw.App != AppID {
		return nil, errors.NewImportError(errors.CodeInvalidApp,
			fmt.Sprintf("backup belongs to %q, expected %q", raw.App, AppID))
	}
	if raw.ExportFormatVersion != ExportFormatVersion {
		return nil, errors.NewImportError(errors.CodeInvalidVersion,
			fmt.Sprintf("unsupported export format version %d, expected %d", raw.ExportFormatVersion, ExportFormatVersion))
	}

	snapshot := &Snapshot{
		App:                 raw.App,
		ExportFormatVersion: raw.ExportFormatVersion,
		ExportedAt:          raw.ExportedAt,
	}
	for _, field := range []struct {
		name string
		raw  json.RawMessage
		dst  interface{}
	}{
		{"projects", raw.Projects, &snapshot.Projects},
		{"sessions", raw.Sessions, &snapshot.Sessions},
		{"segments", raw.Segments, &snapshot.Segments},
	} {
		if field.raw == nil {
			return nil, errors.NewImportError(errors.CodeInvalidStructure,
				fmt.Sprintf("missing %s list", field.name))
		}
		if err := json.Unmarshal(field.raw, field.dst); err != nil {
			return nil, errors.NewImportError(errors.CodeInvalidStructure,
				fmt.Sprintf("%s is not a list of records", field.name))
		}
	}

	if err := validateRelations(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// validateRelations enforces referential integrity within the snapshot:
// every segment must reference an imported session, and every non-null
// segment projectId must reference an imported project.
func validateRelations(s *Snapshot) error {
	sessionIDs := make(map[string]bool, len(s.Sessions))
	for _, sess := range s.Sessions {
		sessionIDs[sess.ID] = true
	}
	projectIDs := make(map[string]bool, len(s.Projects))
	for _, p := range s.Projects {
		projectIDs[p.ID] = true
	}

	for _, seg := range s.Segments {
		if !sessionIDs[seg.SessionID] {
			return errors.NewImportError(errors.CodeInvalidRelations,
				fmt.Sprintf("segment %s references unknown session %s", seg.ID, seg.SessionID))
		}
		if seg.ProjectID != nil && !projectIDs[*seg.ProjectID] {
			return errors.NewImportError(errors.CodeInvalidRelations,
				fmt.Sprintf("segment %s references unknown project %s", seg.ID, *seg.ProjectID))
		}
	}
	return nil
}

// Restore replaces the store's entire contents with the snapshot as one
// all-or-nothing unit. Callers must have validated the snapshot first
// (Parse does).
func Restore(ctx context.Context, repo sqlite.Repository, s *Snapshot) error {
	mapper := domain.NewMapper()

	projects := make([]*sqlite.Project, len(s.Projects))
	for i, p := range s.Projects {
		dbProject := mapper.Project.ToDatabase(p)
		projects[i] = &dbProject
	}
	sessions := make([]*sqlite.Session, len(s.Sessions))
	for i, sess := range s.Sessions {
		dbSession := mapper.Session.ToDatabase(sess)
		sessions[i] = &dbSession
	}
	segments := make([]*sqlite.Segment, len(s.Segments))
	for i, seg := range s.Segments {
		dbSegment := mapper.Segment.ToDatabase(seg)
		segments[i] = &dbSegment
	}

	return repo.ReplaceAll(ctx, projects, sessions, segments)
}

// HasActiveSession reports whether a session is currently in progress.
// Importing over a live session would strand its segments, so callers
// should refuse in that case.
func HasActiveSession(ctx context.Context, repo sqlite.Repository) (bool, error) {
	active, err := repo.GetActiveSession(ctx)
	if err != nil {
		return false, err
	}
	return active != nil, nil
}

// HasAnyData reports whether any of the three stores holds records,
// letting callers warn before an import overwrites existing data.
func HasAnyData(ctx context.Context, repo sqlite.Repository) (bool, error) {
	projects, err := repo.ListProjects(ctx)
	if err != nil {
		return false, err
	}
	if len(projects) > 0 {
		return true, nil
	}
	sessions, err := repo.ListSessions(ctx)
	if err != nil {
		return false, err
	}
	if len(sessions) > 0 {
		return true, nil
	}
	segments, err := repo.ListSegments(ctx)
	if err != nil {
		return false, err
	}
	return len(segments) > 0, nil
}
