package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectCommand(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()
	cmd := NewProjectCommand(app)

	t.Run("add creates a project", func(t *testing.T) {
		require.NoError(t, cmd.ExecuteAdd(ctx, []string{"deep", "work"}))

		project, err := app.api.FindProjectByName(ctx, "deep work")
		require.NoError(t, err)
		require.Equal(t, "deep work", project.Name)
	})

	t.Run("add rejects a blank name", func(t *testing.T) {
		require.Error(t, cmd.ExecuteAdd(ctx, []string{"   "}))
	})

	t.Run("list handles projects without error", func(t *testing.T) {
		require.NoError(t, cmd.ExecuteList(ctx, nil))
	})

	t.Run("rename changes the name", func(t *testing.T) {
		project, err := app.api.FindProjectByName(ctx, "deep work")
		require.NoError(t, err)

		require.NoError(t, cmd.ExecuteRename(ctx, []string{project.ID, "focus", "time"}))

		renamed, err := app.api.GetProject(ctx, project.ID)
		require.NoError(t, err)
		require.Equal(t, "focus time", renamed.Name)
	})

	t.Run("archive and unarchive toggle the flag", func(t *testing.T) {
		project, err := app.api.FindProjectByName(ctx, "focus time")
		require.NoError(t, err)

		require.NoError(t, cmd.ExecuteArchive(ctx, []string{project.ID}, true))
		archived, err := app.api.GetProject(ctx, project.ID)
		require.NoError(t, err)
		require.True(t, archived.Archived)

		require.NoError(t, cmd.ExecuteArchive(ctx, []string{project.ID}, false))
		restored, err := app.api.GetProject(ctx, project.ID)
		require.NoError(t, err)
		require.False(t, restored.Archived)
	})

	t.Run("default designates the start project", func(t *testing.T) {
		project, err := app.api.FindProjectByName(ctx, "focus time")
		require.NoError(t, err)

		require.NoError(t, cmd.ExecuteDefault(ctx, []string{project.ID}))

		got, err := app.api.GetProject(ctx, project.ID)
		require.NoError(t, err)
		require.True(t, got.DefaultStart)
	})

	t.Run("move sets and clears the manual order", func(t *testing.T) {
		project, err := app.api.FindProjectByName(ctx, "focus time")
		require.NoError(t, err)

		require.NoError(t, cmd.ExecuteMove(ctx, []string{project.ID, "2"}))
		got, err := app.api.GetProject(ctx, project.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ManualOrder)
		require.Equal(t, int64(2), *got.ManualOrder)

		require.NoError(t, cmd.ExecuteMove(ctx, []string{project.ID, "auto"}))
		got, err = app.api.GetProject(ctx, project.ID)
		require.NoError(t, err)
		require.Nil(t, got.ManualOrder)
	})

	t.Run("move rejects a malformed position", func(t *testing.T) {
		project, err := app.api.FindProjectByName(ctx, "focus time")
		require.NoError(t, err)

		require.Error(t, cmd.ExecuteMove(ctx, []string{project.ID, "third"}))
	})

	t.Run("delete removes the project", func(t *testing.T) {
		project, err := app.api.FindProjectByName(ctx, "focus time")
		require.NoError(t, err)

		require.NoError(t, cmd.ExecuteDelete(ctx, []string{project.ID}))
		_, err = app.api.GetProject(ctx, project.ID)
		require.Error(t, err)
	})
}
