package domain

import (
	"timekeep/internal/repository/sqlite"
)

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(p Project) sqlite.Project {
	return sqlite.Project{
		ID:           p.ID,
		Name:         p.Name,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Archived:     p.Archived,
		DefaultStart: p.DefaultStart,
		ManualOrder:  p.ManualOrder,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(p sqlite.Project) Project {
	return Project{
		ID:           p.ID,
		Name:         p.Name,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		Archived:     p.Archived,
		DefaultStart: p.DefaultStart,
		ManualOrder:  p.ManualOrder,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []*sqlite.Project) []*Project {
	projects := make([]*Project, len(dbProjects))
	for i, p := range dbProjects {
		project := m.FromDatabase(*p)
		projects[i] = &project
	}
	return projects
}

// SessionMapper handles conversion between domain and database Session models.
type SessionMapper struct{}

// ToDatabase converts a domain Session to a database Session.
func (m *SessionMapper) ToDatabase(s Session) sqlite.Session {
	return sqlite.Session{
		ID:      s.ID,
		StartAt: s.StartAt,
		EndAt:   s.EndAt,
		Note:    s.Note,
	}
}

// FromDatabase converts a database Session to a domain Session.
func (m *SessionMapper) FromDatabase(s sqlite.Session) Session {
	return Session{
		ID:      s.ID,
		StartAt: s.StartAt,
		EndAt:   s.EndAt,
		Note:    s.Note,
	}
}

// FromDatabaseSlice converts a slice of database Sessions to domain Sessions.
func (m *SessionMapper) FromDatabaseSlice(dbSessions []*sqlite.Session) []*Session {
	sessions := make([]*Session, len(dbSessions))
	for i, s := range dbSessions {
		session := m.FromDatabase(*s)
		sessions[i] = &session
	}
	return sessions
}

// SegmentMapper handles conversion between domain and database Segment models.
type SegmentMapper struct{}

// ToDatabase converts a domain Segment to a database Segment.
func (m *SegmentMapper) ToDatabase(s Segment) sqlite.Segment {
	return sqlite.Segment{
		ID:        s.ID,
		SessionID: s.SessionID,
		ProjectID: s.ProjectID,
		StartAt:   s.StartAt,
		EndAt:     s.EndAt,
	}
}

// FromDatabase converts a database Segment to a domain Segment.
func (m *SegmentMapper) FromDatabase(s sqlite.Segment) Segment {
	return Segment{
		ID:        s.ID,
		SessionID: s.SessionID,
		ProjectID: s.ProjectID,
		StartAt:   s.StartAt,
		EndAt:     s.EndAt,
	}
}

// FromDatabaseSlice converts a slice of database Segments to domain Segments.
func (m *SegmentMapper) FromDatabaseSlice(dbSegments []*sqlite.Segment) []*Segment {
	segments := make([]*Segment, len(dbSegments))
	for i, s := range dbSegments {
		segment := m.FromDatabase(*s)
		segments[i] = &segment
	}
	return segments
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Project *ProjectMapper
	Session *SessionMapper
	Segment *SegmentMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Project: &ProjectMapper{},
		Session: &SessionMapper{},
		Segment: &SegmentMapper{},
	}
}
