package api

import (
	"context"

	"timekeep/internal/domain"
	"timekeep/internal/errors"
	"timekeep/internal/repository/sqlite"
)

// CreateProject creates a new project with the given name.
func (a *apiImpl) CreateProject(ctx context.Context, name string) (*domain.Project, error) {
	if err := a.projectValidator.ValidateName(name); err != nil {
		return nil, err
	}

	now := nowMillis()
	dbProject := &sqlite.Project{
		Name:      a.projectValidator.CleanName(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.repo.CreateProject(ctx, dbProject); err != nil {
		return nil, err
	}

	project := a.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// GetProject retrieves a project by id.
func (a *apiImpl) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	if err := a.projectValidator.ValidateID(id); err != nil {
		return nil, err
	}

	dbProject, err := a.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	project := a.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// FindProjectByName retrieves a project by exact name. Non-archived
// projects win over archived ones when names collide.
func (a *apiImpl) FindProjectByName(ctx context.Context, name string) (*domain.Project, error) {
	projects, err := a.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	name = a.projectValidator.CleanName(name)
	var archivedMatch *domain.Project
	for _, p := range projects {
		if p.Name != name {
			continue
		}
		if !p.Archived {
			return p, nil
		}
		if archivedMatch == nil {
			archivedMatch = p
		}
	}
	if archivedMatch != nil {
		return archivedMatch, nil
	}
	return nil, errors.NewNotFoundError("project", name)
}

// ListProjects retrieves all projects in display order: non-archived
// first (manual order, then recency), archived after (recency only).
func (a *apiImpl) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	dbProjects, err := a.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	projects := a.mapper.Project.FromDatabaseSlice(dbProjects)
	domain.SortProjects(projects)
	return projects, nil
}

// RenameProject changes a project's name and advances its UpdatedAt.
func (a *apiImpl) RenameProject(ctx context.Context, id string, name string) (*domain.Project, error) {
	if err := a.projectValidator.ValidateID(id); err != nil {
		return nil, err
	}
	if err := a.projectValidator.ValidateName(name); err != nil {
		return nil, err
	}

	dbProject, err := a.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	dbProject.Name = a.projectValidator.CleanName(name)
	dbProject.UpdatedAt = nowMillis()
	if err := a.repo.UpdateProject(ctx, dbProject); err != nil {
		return nil, err
	}

	project := a.mapper.Project.FromDatabase(*dbProject)
	return &project, nil
}

// SetProjectArchived toggles the archived flag. An archived-only patch
// deliberately leaves UpdatedAt untouched so archiving does not reshuffle
// recency ordering.
func (a *apiImpl) SetProjectArchived(ctx context.Context, id string, archived bool) error {
	if err := a.projectValidator.ValidateID(id); err != nil {
		return err
	}

	dbProject, err := a.repo.GetProject(ctx, id)
	if err != nil {
		return err
	}

	dbProject.Archived = archived
	return a.repo.UpdateProject(ctx, dbProject)
}

// ReorderProject sets or clears a project's manual sort key. A
// manualOrder-only patch leaves UpdatedAt untouched.
func (a *apiImpl) ReorderProject(ctx context.Context, id string, manualOrder *int64) error {
	if err := a.projectValidator.ValidateID(id); err != nil {
		return err
	}

	dbProject, err := a.repo.GetProject(ctx, id)
	if err != nil {
		return err
	}

	dbProject.ManualOrder = manualOrder
	return a.repo.UpdateProject(ctx, dbProject)
}

// SetDefaultStartProject designates the project preselected when a
// session starts. At most one non-archived project may hold the flag, so
// the repository clears it everywhere else in the same transaction.
func (a *apiImpl) SetDefaultStartProject(ctx context.Context, id string) error {
	if err := a.projectValidator.ValidateID(id); err != nil {
		return err
	}

	dbProject, err := a.repo.GetProject(ctx, id)
	if err != nil {
		return err
	}
	if dbProject.Archived {
		return errors.NewConflictError("an archived project cannot be the default start project")
	}

	return a.repo.SetDefaultProject(ctx, id, nowMillis())
}

// DeleteProject removes a project. Segments referencing it keep their
// projectId; referential integrity is enforced at import time only.
func (a *apiImpl) DeleteProject(ctx context.Context, id string) error {
	if err := a.projectValidator.ValidateID(id); err != nil {
		return err
	}
	return a.repo.DeleteProject(ctx, id)
}

// defaultStartProject returns the non-archived project flagged for
// session start, or nil when none is designated.
func (a *apiImpl) defaultStartProject(ctx context.Context) (*domain.Project, error) {
	projects, err := a.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.DefaultStart && !p.Archived {
			return p, nil
		}
	}
	return nil, nil
}
