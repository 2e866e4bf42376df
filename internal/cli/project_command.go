package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"timekeep/internal/api"
	"timekeep/internal/errors"
)

// ProjectCommand handles the project subcommands
type ProjectCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewProjectCommand creates a new project command handler
func NewProjectCommand(app *App) *ProjectCommand {
	return &ProjectCommand{
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// ExecuteAdd creates a new project
func (c *ProjectCommand) ExecuteAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk project add <name>")
	}

	project, err := c.api.CreateProject(ctx, strings.Join(args, " "))
	if err != nil {
		return c.errorHandler.Handle("add project", err)
	}

	fmt.Printf("Added project %s (%s)\n", project.Name, project.ID)
	return nil
}

// ExecuteList lists all projects in display order
func (c *ProjectCommand) ExecuteList(ctx context.Context, args []string) error {
	projects, err := c.api.ListProjects(ctx)
	if err != nil {
		return c.errorHandler.Handle("list projects", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects yet")
		return nil
	}

	for _, p := range projects {
		var marks []string
		if p.DefaultStart {
			marks = append(marks, "default")
		}
		if p.Archived {
			marks = append(marks, "archived")
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = " [" + strings.Join(marks, ", ") + "]"
		}
		fmt.Printf("%s  %s%s\n", p.ID, p.Name, suffix)
	}
	return nil
}

// ExecuteRename renames a project
func (c *ProjectCommand) ExecuteRename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk project rename <id> <new name>")
	}

	project, err := c.api.RenameProject(ctx, args[0], strings.Join(args[1:], " "))
	if err != nil {
		return c.errorHandler.Handle("rename project", err)
	}

	fmt.Printf("Renamed project to %s\n", project.Name)
	return nil
}

// ExecuteArchive toggles a project's archived state
func (c *ProjectCommand) ExecuteArchive(ctx context.Context, args []string, archived bool) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk project archive|unarchive <id>")
	}

	if err := c.api.SetProjectArchived(ctx, args[0], archived); err != nil {
		return c.errorHandler.Handle("archive project", err)
	}

	if archived {
		fmt.Printf("Archived project %s\n", args[0])
	} else {
		fmt.Printf("Unarchived project %s\n", args[0])
	}
	return nil
}

// ExecuteDefault designates the project new sessions start on
func (c *ProjectCommand) ExecuteDefault(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk project default <id>")
	}

	if err := c.api.SetDefaultStartProject(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("set default project", err)
	}

	fmt.Printf("Project %s is now the default for new sessions\n", args[0])
	return nil
}

// ExecuteMove repositions a project in the manual ordering. "auto"
// clears the manual position, putting the project back in recency order.
func (c *ProjectCommand) ExecuteMove(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk project move <id> <position|auto>")
	}

	var order *int64
	if args[1] != "auto" {
		position, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil || position < 0 {
			return c.errorHandler.HandleSimple(
				errors.NewInvalidInputError("position", args[1], "expected a non-negative integer or \"auto\""))
		}
		order = &position
	}

	if err := c.api.ReorderProject(ctx, args[0], order); err != nil {
		return c.errorHandler.Handle("move project", err)
	}

	fmt.Printf("Moved project %s\n", args[0])
	return nil
}

// ExecuteDelete removes a project entirely
func (c *ProjectCommand) ExecuteDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("arguments", args, "usage: tk project delete <id>")
	}

	if err := c.api.DeleteProject(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("delete project", err)
	}

	fmt.Printf("Deleted project %s\n", args[0])
	return nil
}
