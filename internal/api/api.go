// Package api is the business facade over the repository: it enforces the
// write-time invariants (single in-progress session, single open segment
// per session, single default-start project) and exposes the accounting
// operations to the CLI.
package api

import (
	"context"
	"time"

	"timekeep/internal/domain"
	"timekeep/internal/repository/sqlite"
	"timekeep/internal/stats"
	"timekeep/internal/validation"
)

// nowMillis is a variable so tests can pin the clock
var nowMillis = func() int64 {
	return time.Now().UnixMilli()
}

// CurrentState describes the in-progress session for live display.
type CurrentState struct {
	Session   *domain.Session
	Segments  []*domain.Segment
	Project   *domain.Project // project of the open segment, nil for unassigned
	ElapsedMs int64
}

// API defines the interface for all timekeep operations.
type API interface {
	// Project operations
	CreateProject(ctx context.Context, name string) (*domain.Project, error)
	GetProject(ctx context.Context, id string) (*domain.Project, error)
	FindProjectByName(ctx context.Context, name string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	RenameProject(ctx context.Context, id string, name string) (*domain.Project, error)
	SetProjectArchived(ctx context.Context, id string, archived bool) error
	ReorderProject(ctx context.Context, id string, manualOrder *int64) error
	SetDefaultStartProject(ctx context.Context, id string) error
	DeleteProject(ctx context.Context, id string) error

	// Session lifecycle
	StartSession(ctx context.Context, projectID *string, note string) (*domain.Session, error)
	SwitchSegment(ctx context.Context, projectID *string) (*domain.Segment, error)
	StopSession(ctx context.Context) (*domain.Session, error)
	GetSession(ctx context.Context, id string) (*domain.Session, error)
	ListSessions(ctx context.Context) ([]*domain.Session, error)
	ListSessionSegments(ctx context.Context, sessionID string) ([]*domain.Segment, error)
	UpdateSessionTimes(ctx context.Context, id string, startAt int64, endAt *int64, note *string) (*domain.Session, error)
	DeleteSession(ctx context.Context, id string) error
	GetSessionsOverlapping(ctx context.Context, startAt, endAt int64, excludeSessionID *string) ([]*domain.Session, error)

	// Accounting
	Current(ctx context.Context, pausedAt *int64) (*CurrentState, error)
	SessionDurationMs(ctx context.Context, id string) (int64, error)
	DayTotals(ctx context.Context, bounds stats.Bounds) (map[string]int64, error)

	// Backup
	ExportBackup(ctx context.Context) ([]byte, string, error)
	ImportBackup(ctx context.Context, data []byte) error
	HasActiveSession(ctx context.Context) (bool, error)
	HasAnyData(ctx context.Context) (bool, error)

	// Development helpers
	SeedRandomData(ctx context.Context, months int) error
}

type apiImpl struct {
	repo             sqlite.Repository
	mapper           *domain.Mapper
	loc              *time.Location
	projectValidator *validation.ProjectValidator
	sessionValidator *validation.SessionValidator
}

// New creates a new API instance aggregating in the local time zone.
func New(repo sqlite.Repository) API {
	return NewWithLocation(repo, time.Local)
}

// NewWithLocation creates a new API instance with an explicit time zone
// for calendar-day bucketing (tests pin a zone for determinism).
func NewWithLocation(repo sqlite.Repository, loc *time.Location) API {
	return &apiImpl{
		repo:             repo,
		mapper:           domain.NewMapper(),
		loc:              loc,
		projectValidator: validation.NewProjectValidator(),
		sessionValidator: validation.NewSessionValidator(),
	}
}
