package sqlite

// Project represents a project row. Timestamps are epoch milliseconds,
// matching the backup interchange format.
type Project struct {
	ID           string
	Name         string
	CreatedAt    int64
	UpdatedAt    int64
	Archived     bool
	DefaultStart bool
	ManualOrder  *int64 // NULL means no explicit ordering
}

// Session represents a session row. EndAt is NULL while in progress.
type Session struct {
	ID      string
	StartAt int64
	EndAt   *int64
	Note    string
}

// Segment represents a segment row. ProjectID NULL means unassigned work;
// EndAt NULL marks the currently open segment of its session.
type Segment struct {
	ID        string
	SessionID string
	ProjectID *string
	StartAt   int64
	EndAt     *int64
}
