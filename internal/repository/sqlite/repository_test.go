package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeep/internal/errors"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "timekeep.db")
	repo, err := New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestProjectCRUD(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	t.Run("should create a project and assign an id", func(t *testing.T) {
		project := &Project{Name: "writing", CreatedAt: 1000, UpdatedAt: 1000}
		require.NoError(t, repo.CreateProject(ctx, project))
		assert.NotEmpty(t, project.ID)

		retrieved, err := repo.GetProject(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "writing", retrieved.Name)
		assert.Nil(t, retrieved.ManualOrder)
	})

	t.Run("should round-trip a manual order", func(t *testing.T) {
		project := &Project{Name: "ordered", CreatedAt: 1000, UpdatedAt: 1000, ManualOrder: int64Ptr(3)}
		require.NoError(t, repo.CreateProject(ctx, project))

		retrieved, err := repo.GetProject(ctx, project.ID)
		require.NoError(t, err)
		require.NotNil(t, retrieved.ManualOrder)
		assert.Equal(t, int64(3), *retrieved.ManualOrder)
	})

	t.Run("should update a project", func(t *testing.T) {
		project := &Project{Name: "before", CreatedAt: 1000, UpdatedAt: 1000}
		require.NoError(t, repo.CreateProject(ctx, project))

		project.Name = "after"
		project.Archived = true
		project.UpdatedAt = 2000
		require.NoError(t, repo.UpdateProject(ctx, project))

		retrieved, err := repo.GetProject(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "after", retrieved.Name)
		assert.True(t, retrieved.Archived)
		assert.Equal(t, int64(2000), retrieved.UpdatedAt)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		_, err := repo.GetProject(ctx, "missing-id")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should delete a project", func(t *testing.T) {
		project := &Project{Name: "doomed", CreatedAt: 1000, UpdatedAt: 1000}
		require.NoError(t, repo.CreateProject(ctx, project))
		require.NoError(t, repo.DeleteProject(ctx, project.ID))

		_, err := repo.GetProject(ctx, project.ID)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestSetDefaultProject(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	first := &Project{Name: "first", CreatedAt: 1000, UpdatedAt: 1000, DefaultStart: true}
	second := &Project{Name: "second", CreatedAt: 1000, UpdatedAt: 1000}
	require.NoError(t, repo.CreateProject(ctx, first))
	require.NoError(t, repo.CreateProject(ctx, second))

	t.Run("should move the default flag atomically", func(t *testing.T) {
		require.NoError(t, repo.SetDefaultProject(ctx, second.ID, 5000))

		p1, err := repo.GetProject(ctx, first.ID)
		require.NoError(t, err)
		p2, err := repo.GetProject(ctx, second.ID)
		require.NoError(t, err)

		assert.False(t, p1.DefaultStart)
		assert.True(t, p2.DefaultStart)
		// Only the newly designated project's updated_at moves.
		assert.Equal(t, int64(1000), p1.UpdatedAt)
		assert.Equal(t, int64(5000), p2.UpdatedAt)
	})

	t.Run("should roll back when the target does not exist", func(t *testing.T) {
		err := repo.SetDefaultProject(ctx, "missing-id", 6000)
		assert.Error(t, err)

		// The previous default survives the failed transaction.
		p2, getErr := repo.GetProject(ctx, second.ID)
		require.NoError(t, getErr)
		assert.True(t, p2.DefaultStart)
	})
}

func TestSessionCRUD(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	t.Run("should create and retrieve a session", func(t *testing.T) {
		session := &Session{StartAt: 1000, Note: "morning"}
		require.NoError(t, repo.CreateSession(ctx, session))
		assert.NotEmpty(t, session.ID)

		retrieved, err := repo.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1000), retrieved.StartAt)
		assert.Nil(t, retrieved.EndAt)
		assert.Equal(t, "morning", retrieved.Note)
	})

	t.Run("should find the active session", func(t *testing.T) {
		active, err := repo.GetActiveSession(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Nil(t, active.EndAt)
	})

	t.Run("should report no active session once closed", func(t *testing.T) {
		active, err := repo.GetActiveSession(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)

		active.EndAt = int64Ptr(2000)
		require.NoError(t, repo.UpdateSession(ctx, active))

		none, err := repo.GetActiveSession(ctx)
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("should list sessions ordered by start time", func(t *testing.T) {
		later := &Session{StartAt: 9000, EndAt: int64Ptr(9500)}
		earlier := &Session{StartAt: 500, EndAt: int64Ptr(800)}
		require.NoError(t, repo.CreateSession(ctx, later))
		require.NoError(t, repo.CreateSession(ctx, earlier))

		sessions, err := repo.ListSessions(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(sessions), 3)
		assert.Equal(t, earlier.ID, sessions[0].ID)
	})
}

func TestDeleteSessionCascade(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	session := &Session{StartAt: 1000, EndAt: int64Ptr(3000)}
	require.NoError(t, repo.CreateSession(ctx, session))

	for i := int64(0); i < 3; i++ {
		seg := &Segment{SessionID: session.ID, StartAt: 1000 + i*500, EndAt: int64Ptr(1500 + i*500)}
		require.NoError(t, repo.CreateSegment(ctx, seg))
	}

	t.Run("should delete the session and all its segments", func(t *testing.T) {
		require.NoError(t, repo.DeleteSessionCascade(ctx, session.ID))

		_, err := repo.GetSession(ctx, session.ID)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

		segments, err := repo.ListSegmentsBySession(ctx, session.ID)
		require.NoError(t, err)
		assert.Empty(t, segments)
	})

	t.Run("should fail for an unknown session", func(t *testing.T) {
		err := repo.DeleteSessionCascade(ctx, "missing-id")
		assert.Error(t, err)
	})
}

func TestSegmentQueries(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	project := &Project{Name: "tagged", CreatedAt: 1000, UpdatedAt: 1000}
	require.NoError(t, repo.CreateProject(ctx, project))

	session := &Session{StartAt: 1000}
	require.NoError(t, repo.CreateSession(ctx, session))

	closed := &Segment{SessionID: session.ID, ProjectID: &project.ID, StartAt: 1000, EndAt: int64Ptr(2000)}
	open := &Segment{SessionID: session.ID, StartAt: 2000}
	require.NoError(t, repo.CreateSegment(ctx, closed))
	require.NoError(t, repo.CreateSegment(ctx, open))

	t.Run("should list a session's segments in start order", func(t *testing.T) {
		segments, err := repo.ListSegmentsBySession(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, segments, 2)
		assert.Equal(t, closed.ID, segments[0].ID)
		require.NotNil(t, segments[0].ProjectID)
		assert.Equal(t, project.ID, *segments[0].ProjectID)
		assert.Nil(t, segments[1].ProjectID)
	})

	t.Run("should find the open segment", func(t *testing.T) {
		found, err := repo.GetOpenSegment(ctx, session.ID)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, open.ID, found.ID)
	})

	t.Run("should return nil once every segment is closed", func(t *testing.T) {
		open.EndAt = int64Ptr(3000)
		require.NoError(t, repo.UpdateSegment(ctx, open))

		found, err := repo.GetOpenSegment(ctx, session.ID)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("should get a segment by id", func(t *testing.T) {
		found, err := repo.GetSegment(ctx, closed.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, found.SessionID)
		require.NotNil(t, found.ProjectID)
		assert.Equal(t, project.ID, *found.ProjectID)
	})

	t.Run("should return not found for an unknown segment id", func(t *testing.T) {
		_, err := repo.GetSegment(ctx, "8ee6a939-2f6f-466e-8353-2f18b38fd43e")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should delete a segment", func(t *testing.T) {
		require.NoError(t, repo.DeleteSegment(ctx, open.ID))

		segments, err := repo.ListSegmentsBySession(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, segments, 1)
		assert.Equal(t, closed.ID, segments[0].ID)
	})

	t.Run("should fail deleting an unknown segment id", func(t *testing.T) {
		err := repo.DeleteSegment(ctx, "8ee6a939-2f6f-466e-8353-2f18b38fd43e")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestReplaceAll(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	// Existing data that the restore must wipe.
	old := &Project{Name: "old", CreatedAt: 100, UpdatedAt: 100}
	require.NoError(t, repo.CreateProject(ctx, old))
	oldSession := &Session{StartAt: 100, EndAt: int64Ptr(200)}
	require.NoError(t, repo.CreateSession(ctx, oldSession))

	newProject := &Project{ID: "p-1", Name: "restored", CreatedAt: 1000, UpdatedAt: 1000}
	newSession := &Session{ID: "s-1", StartAt: 1000, EndAt: int64Ptr(2000)}
	newSegment := &Segment{ID: "g-1", SessionID: "s-1", ProjectID: strPtr("p-1"), StartAt: 1000, EndAt: int64Ptr(2000)}

	t.Run("should replace the entire store", func(t *testing.T) {
		err := repo.ReplaceAll(ctx,
			[]*Project{newProject}, []*Session{newSession}, []*Segment{newSegment})
		require.NoError(t, err)

		projects, err := repo.ListProjects(ctx)
		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, "restored", projects[0].Name)

		sessions, err := repo.ListSessions(ctx)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, "s-1", sessions[0].ID)

		segments, err := repo.ListSegments(ctx)
		require.NoError(t, err)
		require.Len(t, segments, 1)
		assert.Equal(t, "g-1", segments[0].ID)
	})

	t.Run("should leave the store untouched when an insert fails", func(t *testing.T) {
		// A duplicate project id fails the transaction part-way.
		bad := []*Project{
			{ID: "dup", Name: "one", CreatedAt: 1, UpdatedAt: 1},
			{ID: "dup", Name: "two", CreatedAt: 2, UpdatedAt: 2},
		}
		err := repo.ReplaceAll(ctx, bad, nil, nil)
		assert.Error(t, err)

		projects, listErr := repo.ListProjects(ctx)
		require.NoError(t, listErr)
		require.Len(t, projects, 1)
		assert.Equal(t, "restored", projects[0].Name)
	})
}
