package api

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timekeep/internal/errors"
)

func TestCreateProject(t *testing.T) {
	a, _ := setupTestAPI(t)
	ctx := context.Background()

	t.Run("should create a project with trimmed name", func(t *testing.T) {
		project, err := a.CreateProject(ctx, "  writing  ")
		require.NoError(t, err)
		assert.Equal(t, "writing", project.Name)
		assert.NotEmpty(t, project.ID)
		assert.Equal(t, project.CreatedAt, project.UpdatedAt)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		_, err := a.CreateProject(ctx, "   ")
		assert.Error(t, err)
	})
}

func TestRenameProject(t *testing.T) {
	a, clock := setupTestAPI(t)
	ctx := context.Background()

	project, err := a.CreateProject(ctx, "before")
	require.NoError(t, err)

	t.Run("should rename and advance UpdatedAt", func(t *testing.T) {
		clock.Advance(60_000)

		renamed, err := a.RenameProject(ctx, project.ID, "after")
		require.NoError(t, err)
		assert.Equal(t, "after", renamed.Name)
		assert.Greater(t, renamed.UpdatedAt, project.UpdatedAt)
	})
}

func TestArchiveAndReorderDoNotBumpRecency(t *testing.T) {
	a, clock := setupTestAPI(t)
	ctx := context.Background()

	project, err := a.CreateProject(ctx, "stable")
	require.NoError(t, err)

	t.Run("archiving should leave UpdatedAt untouched", func(t *testing.T) {
		clock.Advance(60_000)
		require.NoError(t, a.SetProjectArchived(ctx, project.ID, true))

		got, err := a.GetProject(ctx, project.ID)
		require.NoError(t, err)
		assert.True(t, got.Archived)
		assert.Equal(t, project.UpdatedAt, got.UpdatedAt)
	})

	t.Run("reordering should leave UpdatedAt untouched", func(t *testing.T) {
		require.NoError(t, a.SetProjectArchived(ctx, project.ID, false))
		clock.Advance(60_000)
		require.NoError(t, a.ReorderProject(ctx, project.ID, int64Ptr(1)))

		got, err := a.GetProject(ctx, project.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ManualOrder)
		assert.Equal(t, int64(1), *got.ManualOrder)
		assert.Equal(t, project.UpdatedAt, got.UpdatedAt)
	})

	t.Run("clearing the manual order should restore recency ordering", func(t *testing.T) {
		require.NoError(t, a.ReorderProject(ctx, project.ID, nil))

		got, err := a.GetProject(ctx, project.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ManualOrder)
	})
}

func TestSetDefaultStartProject(t *testing.T) {
	a, _ := setupTestAPI(t)
	ctx := context.Background()

	first, err := a.CreateProject(ctx, "first")
	require.NoError(t, err)
	second, err := a.CreateProject(ctx, "second")
	require.NoError(t, err)

	t.Run("should hold the flag on exactly one project", func(t *testing.T) {
		require.NoError(t, a.SetDefaultStartProject(ctx, first.ID))
		require.NoError(t, a.SetDefaultStartProject(ctx, second.ID))

		projects, err := a.ListProjects(ctx)
		require.NoError(t, err)

		var defaults int
		for _, p := range projects {
			if p.DefaultStart {
				defaults++
				assert.Equal(t, second.ID, p.ID)
			}
		}
		assert.Equal(t, 1, defaults)
	})

	t.Run("should reject an archived project", func(t *testing.T) {
		archived, err := a.CreateProject(ctx, "attic")
		require.NoError(t, err)
		require.NoError(t, a.SetProjectArchived(ctx, archived.ID, true))

		err = a.SetDefaultStartProject(ctx, archived.ID)
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeConflict))
	})
}

func TestListProjectsOrdering(t *testing.T) {
	a, clock := setupTestAPI(t)
	ctx := context.Background()

	older, err := a.CreateProject(ctx, "older")
	require.NoError(t, err)
	clock.Advance(60_000)
	newer, err := a.CreateProject(ctx, "newer")
	require.NoError(t, err)
	clock.Advance(60_000)
	pinned, err := a.CreateProject(ctx, "pinned")
	require.NoError(t, err)
	require.NoError(t, a.ReorderProject(ctx, pinned.ID, int64Ptr(0)))

	archived, err := a.CreateProject(ctx, "archived")
	require.NoError(t, err)
	require.NoError(t, a.SetProjectArchived(ctx, archived.ID, true))

	projects, err := a.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 4)

	assert.Equal(t, pinned.ID, projects[0].ID)
	assert.Equal(t, newer.ID, projects[1].ID)
	assert.Equal(t, older.ID, projects[2].ID)
	assert.Equal(t, archived.ID, projects[3].ID)
}

func TestFindProjectByName(t *testing.T) {
	a, _ := setupTestAPI(t)
	ctx := context.Background()

	active, err := a.CreateProject(ctx, "shared")
	require.NoError(t, err)
	hidden, err := a.CreateProject(ctx, "attic")
	require.NoError(t, err)
	require.NoError(t, a.SetProjectArchived(ctx, hidden.ID, true))

	t.Run("should find by exact name", func(t *testing.T) {
		found, err := a.FindProjectByName(ctx, "shared")
		require.NoError(t, err)
		assert.Equal(t, active.ID, found.ID)
	})

	t.Run("should find an archived project when nothing else matches", func(t *testing.T) {
		found, err := a.FindProjectByName(ctx, "attic")
		require.NoError(t, err)
		assert.Equal(t, hidden.ID, found.ID)
	})

	t.Run("should return not found for an unknown name", func(t *testing.T) {
		_, err := a.FindProjectByName(ctx, "missing")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}
