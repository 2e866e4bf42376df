package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func orderPtr(v int64) *int64 {
	return &v
}

func TestProjectIsValid(t *testing.T) {
	t.Run("should accept a named project with a creation time", func(t *testing.T) {
		p := NewProject("writing", 1000)
		assert.True(t, p.IsValid())
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		p := NewProject("", 1000)
		assert.False(t, p.IsValid())
	})

	t.Run("should reject a missing creation time", func(t *testing.T) {
		p := Project{Name: "writing"}
		assert.False(t, p.IsValid())
	})
}

func TestSortProjects(t *testing.T) {
	t.Run("should put archived projects last", func(t *testing.T) {
		projects := []*Project{
			{ID: "a", Archived: true, UpdatedAt: 900},
			{ID: "b", UpdatedAt: 100},
		}
		SortProjects(projects)

		assert.Equal(t, "b", projects[0].ID)
		assert.Equal(t, "a", projects[1].ID)
	})

	t.Run("should order non-archived by manual order then recency", func(t *testing.T) {
		projects := []*Project{
			{ID: "recent", UpdatedAt: 500},
			{ID: "second", ManualOrder: orderPtr(2), UpdatedAt: 900},
			{ID: "older", UpdatedAt: 300},
			{ID: "first", ManualOrder: orderPtr(1), UpdatedAt: 100},
		}
		SortProjects(projects)

		assert.Equal(t, "first", projects[0].ID)
		assert.Equal(t, "second", projects[1].ID)
		assert.Equal(t, "recent", projects[2].ID)
		assert.Equal(t, "older", projects[3].ID)
	})

	t.Run("should ignore manual order on archived projects", func(t *testing.T) {
		projects := []*Project{
			{ID: "a", Archived: true, ManualOrder: orderPtr(1), UpdatedAt: 100},
			{ID: "b", Archived: true, UpdatedAt: 900},
		}
		SortProjects(projects)

		assert.Equal(t, "b", projects[0].ID)
		assert.Equal(t, "a", projects[1].ID)
	})
}

func TestSessionOverlaps(t *testing.T) {
	end := int64(2000)
	finished := Session{ID: "s1", StartAt: 1000, EndAt: &end}

	t.Run("should detect a proper intersection", func(t *testing.T) {
		assert.True(t, finished.Overlaps(1500, 2500, 9999))
		assert.True(t, finished.Overlaps(500, 1500, 9999))
		assert.True(t, finished.Overlaps(500, 2500, 9999))
		assert.True(t, finished.Overlaps(1200, 1800, 9999))
	})

	t.Run("should not count spans touching only at an endpoint", func(t *testing.T) {
		assert.False(t, finished.Overlaps(2000, 3000, 9999))
		assert.False(t, finished.Overlaps(500, 1000, 9999))
	})

	t.Run("should evaluate an in-progress session against now", func(t *testing.T) {
		open := Session{ID: "s2", StartAt: 1000}
		assert.True(t, open.Overlaps(1500, 2500, 3000))
		assert.False(t, open.Overlaps(3000, 4000, 3000))
	})
}

func TestSegmentEffectiveEnd(t *testing.T) {
	t.Run("should use the end time when closed", func(t *testing.T) {
		end := int64(2000)
		s := Segment{SessionID: "s1", StartAt: 1000, EndAt: &end}
		assert.Equal(t, int64(2000), s.EffectiveEnd(9999))
		assert.False(t, s.IsOpen())
	})

	t.Run("should use the reference time when open", func(t *testing.T) {
		s := NewSegment("s1", nil, 1000)
		assert.Equal(t, int64(9999), s.EffectiveEnd(9999))
		assert.True(t, s.IsOpen())
	})
}
