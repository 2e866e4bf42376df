package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanProject scans a single project from a database row
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	var manualOrder sql.NullInt64

	err := scanner.Scan(
		&project.ID,
		&project.Name,
		&project.CreatedAt,
		&project.UpdatedAt,
		&project.Archived,
		&project.DefaultStart,
		&manualOrder,
	)
	if err != nil {
		return nil, err
	}

	if manualOrder.Valid {
		project.ManualOrder = &manualOrder.Int64
	}
	return project, nil
}

// ScanProjects scans multiple projects from database rows
func ScanProjects(rows Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		project, err := ScanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return projects, nil
}

// ScanSession scans a single session from a database row
func ScanSession(scanner Scanner) (*Session, error) {
	session := &Session{}
	var endAt sql.NullInt64

	err := scanner.Scan(
		&session.ID,
		&session.StartAt,
		&endAt,
		&session.Note,
	)
	if err != nil {
		return nil, err
	}

	if endAt.Valid {
		session.EndAt = &endAt.Int64
	}
	return session, nil
}

// ScanSessions scans multiple sessions from database rows
func ScanSessions(rows Rows) ([]*Session, error) {
	var sessions []*Session
	for rows.Next() {
		session, err := ScanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ScanSegment scans a single segment from a database row
func ScanSegment(scanner Scanner) (*Segment, error) {
	segment := &Segment{}
	var projectID sql.NullString
	var endAt sql.NullInt64

	err := scanner.Scan(
		&segment.ID,
		&segment.SessionID,
		&projectID,
		&segment.StartAt,
		&endAt,
	)
	if err != nil {
		return nil, err
	}

	if projectID.Valid {
		segment.ProjectID = &projectID.String
	}
	if endAt.Valid {
		segment.EndAt = &endAt.Int64
	}
	return segment, nil
}

// ScanSegments scans multiple segments from database rows
func ScanSegments(rows Rows) ([]*Segment, error) {
	var segments []*Segment
	for rows.Next() {
		segment, err := ScanSegment(rows)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return segments, nil
}
