package sqlite

import (
	"context"
	"database/sql"

	"timekeep/internal/errors"
	"timekeep/internal/repository/sqlite/migrations"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id string) error
	// SetDefaultProject clears the default-start flag on every project and
	// sets it on the given one as a single transaction, so the one-default
	// invariant holds even under a concurrent reader.
	SetDefaultProject(ctx context.Context, id string, updatedAt int64) error

	// Session operations
	CreateSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	ListSessions(ctx context.Context) ([]*Session, error)
	GetActiveSession(ctx context.Context) (*Session, error)
	UpdateSession(ctx context.Context, session *Session) error
	// DeleteSessionCascade removes a session and all its segments as one
	// all-or-nothing unit.
	DeleteSessionCascade(ctx context.Context, id string) error

	// Segment operations
	CreateSegment(ctx context.Context, segment *Segment) error
	GetSegment(ctx context.Context, id string) (*Segment, error)
	ListSegments(ctx context.Context) ([]*Segment, error)
	ListSegmentsBySession(ctx context.Context, sessionID string) ([]*Segment, error)
	GetOpenSegment(ctx context.Context, sessionID string) (*Segment, error)
	UpdateSegment(ctx context.Context, segment *Segment) error
	DeleteSegment(ctx context.Context, id string) error

	// ReplaceAll clears all three tables and repopulates them from the
	// given records as one all-or-nothing unit (backup restore).
	ReplaceAll(ctx context.Context, projects []*Project, sessions []*Session, segments []*Segment) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// The driver opens one connection per query by default; a single
	// connection keeps :memory: databases coherent and avoids busy errors.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateProject creates a new project, assigning an id if none is set
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}

	query := `
	INSERT INTO projects (id, name, created_at, updated_at, archived, default_start, manual_order)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.Name, project.CreatedAt, project.UpdatedAt,
		project.Archived, project.DefaultStart, nullInt64(project.ManualOrder))
	if err != nil {
		return HandleDatabaseError("create project", err)
	}
	return nil
}

// GetProject retrieves a project by ID
func (r *SQLiteRepository) GetProject(ctx context.Context, id string) (*Project, error) {
	query := `
	SELECT id, name, created_at, updated_at, archived, default_start, manual_order
	FROM projects
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanProject, "project", id, id)
}

// ListProjects retrieves all projects
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `
	SELECT id, name, created_at, updated_at, archived, default_start, manual_order
	FROM projects
	ORDER BY created_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// UpdateProject updates an existing project
func (r *SQLiteRepository) UpdateProject(ctx context.Context, project *Project) error {
	query := `
	UPDATE projects
	SET name = ?, created_at = ?, updated_at = ?, archived = ?, default_start = ?, manual_order = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "project", project.ID,
		project.Name, project.CreatedAt, project.UpdatedAt,
		project.Archived, project.DefaultStart, nullInt64(project.ManualOrder), project.ID)
}

// DeleteProject deletes a project by ID
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id string) error {
	query := `DELETE FROM projects WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "project", id, id)
}

// SetDefaultProject atomically designates the default-start project
func (r *SQLiteRepository) SetDefaultProject(ctx context.Context, id string, updatedAt int64) error {
	return withTransaction(ctx, r.db, "set default project", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `UPDATE projects SET default_start = 0 WHERE default_start = 1`); err != nil {
			return HandleDatabaseError("clear default project", err)
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE projects SET default_start = 1, updated_at = ? WHERE id = ?`, updatedAt, id)
		if err != nil {
			return HandleDatabaseError("set default project", err)
		}
		return ValidateRowsAffected(result, "project", id)
	})
}

// CreateSession creates a new session, assigning an id if none is set
func (r *SQLiteRepository) CreateSession(ctx context.Context, session *Session) error {
	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	query := `
	INSERT INTO sessions (id, start_at, end_at, note)
	VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.StartAt, nullInt64(session.EndAt), session.Note)
	if err != nil {
		return HandleDatabaseError("create session", err)
	}
	return nil
}

// GetSession retrieves a session by ID
func (r *SQLiteRepository) GetSession(ctx context.Context, id string) (*Session, error) {
	query := `
	SELECT id, start_at, end_at, note
	FROM sessions
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanSession, "session", id, id)
}

// ListSessions retrieves all sessions ordered by start time
func (r *SQLiteRepository) ListSessions(ctx context.Context) ([]*Session, error) {
	query := `
	SELECT id, start_at, end_at, note
	FROM sessions
	ORDER BY start_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanSessions, "sessions")
}

// GetActiveSession retrieves the in-progress session, or nil when there is none
func (r *SQLiteRepository) GetActiveSession(ctx context.Context) (*Session, error) {
	query := `
	SELECT id, start_at, end_at, note
	FROM sessions
	WHERE end_at IS NULL
	ORDER BY start_at ASC
	LIMIT 1`

	return QueryOptional(ctx, r.db, query, ScanSession, "active session")
}

// UpdateSession updates an existing session
func (r *SQLiteRepository) UpdateSession(ctx context.Context, session *Session) error {
	query := `
	UPDATE sessions
	SET start_at = ?, end_at = ?, note = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "session", session.ID,
		session.StartAt, nullInt64(session.EndAt), session.Note, session.ID)
}

// DeleteSessionCascade deletes a session and all its segments in one transaction
func (r *SQLiteRepository) DeleteSessionCascade(ctx context.Context, id string) error {
	return withTransaction(ctx, r.db, "delete session", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM segments WHERE session_id = ?`, id); err != nil {
			return HandleDatabaseError("delete session segments", err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
		if err != nil {
			return HandleDatabaseError("delete session", err)
		}
		return ValidateRowsAffected(result, "session", id)
	})
}

// CreateSegment creates a new segment, assigning an id if none is set
func (r *SQLiteRepository) CreateSegment(ctx context.Context, segment *Segment) error {
	if segment.ID == "" {
		segment.ID = uuid.NewString()
	}

	query := `
	INSERT INTO segments (id, session_id, project_id, start_at, end_at)
	VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		segment.ID, segment.SessionID, nullString(segment.ProjectID),
		segment.StartAt, nullInt64(segment.EndAt))
	if err != nil {
		return HandleDatabaseError("create segment", err)
	}
	return nil
}

// GetSegment retrieves a segment by ID
func (r *SQLiteRepository) GetSegment(ctx context.Context, id string) (*Segment, error) {
	query := `
	SELECT id, session_id, project_id, start_at, end_at
	FROM segments
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanSegment, "segment", id, id)
}

// ListSegments retrieves all segments
func (r *SQLiteRepository) ListSegments(ctx context.Context) ([]*Segment, error) {
	query := `
	SELECT id, session_id, project_id, start_at, end_at
	FROM segments
	ORDER BY start_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanSegments, "segments")
}

// ListSegmentsBySession retrieves a session's segments ordered by start time
func (r *SQLiteRepository) ListSegmentsBySession(ctx context.Context, sessionID string) ([]*Segment, error) {
	query := `
	SELECT id, session_id, project_id, start_at, end_at
	FROM segments
	WHERE session_id = ?
	ORDER BY start_at ASC`

	return QueryMultiple(ctx, r.db, query, ScanSegments, "segments", sessionID)
}

// GetOpenSegment retrieves a session's open segment, or nil when every
// segment is closed. With well-formed data at most one segment per
// session is open; if imported data violates that, the earliest wins.
func (r *SQLiteRepository) GetOpenSegment(ctx context.Context, sessionID string) (*Segment, error) {
	query := `
	SELECT id, session_id, project_id, start_at, end_at
	FROM segments
	WHERE session_id = ? AND end_at IS NULL
	ORDER BY start_at ASC
	LIMIT 1`

	return QueryOptional(ctx, r.db, query, ScanSegment, "open segment", sessionID)
}

// UpdateSegment updates an existing segment
func (r *SQLiteRepository) UpdateSegment(ctx context.Context, segment *Segment) error {
	query := `
	UPDATE segments
	SET session_id = ?, project_id = ?, start_at = ?, end_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "segment", segment.ID,
		segment.SessionID, nullString(segment.ProjectID),
		segment.StartAt, nullInt64(segment.EndAt), segment.ID)
}

// DeleteSegment deletes a segment by ID
func (r *SQLiteRepository) DeleteSegment(ctx context.Context, id string) error {
	query := `DELETE FROM segments WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "segment", id, id)
}

// ReplaceAll clears and repopulates all three tables in one transaction
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, projects []*Project, sessions []*Session, segments []*Segment) error {
	return withTransaction(ctx, r.db, "replace all data", func(tx *sql.Tx) error {
		for _, table := range []string{"segments", "sessions", "projects"} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return HandleDatabaseError("clear "+table, err)
			}
		}

		for _, p := range projects {
			_, err := tx.ExecContext(ctx, `
	INSERT INTO projects (id, name, created_at, updated_at, archived, default_start, manual_order)
	VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.ID, p.Name, p.CreatedAt, p.UpdatedAt, p.Archived, p.DefaultStart, nullInt64(p.ManualOrder))
			if err != nil {
				return HandleDatabaseError("restore project", err)
			}
		}

		for _, s := range sessions {
			_, err := tx.ExecContext(ctx, `
	INSERT INTO sessions (id, start_at, end_at, note)
	VALUES (?, ?, ?, ?)`,
				s.ID, s.StartAt, nullInt64(s.EndAt), s.Note)
			if err != nil {
				return HandleDatabaseError("restore session", err)
			}
		}

		for _, seg := range segments {
			_, err := tx.ExecContext(ctx, `
	INSERT INTO segments (id, session_id, project_id, start_at, end_at)
	VALUES (?, ?, ?, ?, ?)`,
				seg.ID, seg.SessionID, nullString(seg.ProjectID), seg.StartAt, nullInt64(seg.EndAt))
			if err != nil {
				return HandleDatabaseError("restore segment", err)
			}
		}

		return nil
	})
}
