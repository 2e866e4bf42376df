package domain

import "sort"

// Project is a named activity that segments can be tagged to.
// This is a pure domain model without database-specific concerns.
type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CreatedAt    int64  `json:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt"`
	Archived     bool   `json:"archived"`
	DefaultStart bool   `json:"defaultStart"`
	ManualOrder  *int64 `json:"manualOrder,omitempty"`
}

// NewProject creates a new Project with the given name.
func NewProject(name string, now int64) Project {
	return Project{
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValid checks if the project has valid data.
func (p Project) IsValid() bool {
	return p.Name != "" && p.CreatedAt > 0
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}

// SortProjects orders projects for display. Non-archived projects come
// first, sorted by ManualOrder when set (lower first, unordered projects
// after) and by UpdatedAt descending otherwise. Archived projects follow,
// by UpdatedAt descending only; a manual order never applies to them.
func SortProjects(projects []*Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i], projects[j]
		if a.Archived != b.Archived {
			return !a.Archived
		}
		if !a.Archived {
			switch {
			case a.ManualOrder != nil && b.ManualOrder != nil:
				return *a.ManualOrder < *b.ManualOrder
			case a.ManualOrder != nil:
				return true
			case b.ManualOrder != nil:
				return false
			}
		}
		return a.UpdatedAt > b.UpdatedAt
	})
}
