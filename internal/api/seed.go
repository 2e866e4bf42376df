package api

import (
	"context"
	"math/rand"
	"time"

	"timekeep/internal/domain"
	"timekeep/internal/errors"
	"timekeep/internal/repository/sqlite"
)

// SeedRandomData fills the store with plausible finished sessions spread
// over the past months, for development and demo use. It reuses projects
// named test-1, test-2 and test-3 when they already exist and creates
// them otherwise (test-3 archived).
func (a *apiImpl) SeedRandomData(ctx context.Context, months int) error {
	if months < 1 {
		return errors.NewInvalidInputError("months", months, "must be at least 1")
	}

	now := time.UnixMilli(nowMillis()).In(a.loc)
	rangeEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999000000, a.loc).UnixMilli()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, a.loc).AddDate(0, -(months - 1), 0)
	rangeStart := startDate.UnixMilli()

	p1, err := a.ensureProject(ctx, "test-1", false)
	if err != nil {
		return err
	}
	p2, err := a.ensureProject(ctx, "test-2", false)
	if err != nil {
		return err
	}
	p3, err := a.ensureProject(ctx, "test-3", true)
	if err != nil {
		return err
	}
	projectIDs := []*string{nil, &p1.ID, &p2.ID, &p3.ID}

	for i := 0; i < months; i++ {
		monthStart := startDate.AddDate(0, i, 0)
		daysInMonth := monthStart.AddDate(0, 1, -1).Day()
		sessionsThisMonth := randomInt(4, 14)

		for j := 0; j < sessionsThisMonth; j++ {
			day := randomInt(1, daysInMonth)
			startAt := time.Date(monthStart.Year(), monthStart.Month(), day,
				randomInt(8, 20), randomInt(0, 59), 0, 0, a.loc).UnixMilli()
			if startAt < rangeStart || startAt > rangeEnd {
				continue
			}
			durationMs := int64(randomInt(10, 120)) * 60 * 1000
			endAt := startAt + durationMs
			if endAt > rangeEnd {
				continue
			}

			dbSession := sqlite.Session{StartAt: startAt, EndAt: &endAt}
			if err := a.repo.CreateSession(ctx, &dbSession); err != nil {
				return err
			}

			numSegments := randomInt(0, 3)
			if numSegments == 0 {
				seg := sqlite.Segment{SessionID: dbSession.ID, StartAt: startAt, EndAt: &endAt}
				if err := a.repo.CreateSegment(ctx, &seg); err != nil {
					return err
				}
				continue
			}

			step := durationMs / int64(numSegments)
			for s := 0; s < numSegments; s++ {
				segStart := startAt + int64(s)*step
				segEnd := startAt + int64(s+1)*step
				if s == numSegments-1 {
					segEnd = endAt
				}
				seg := sqlite.Segment{
					SessionID: dbSession.ID,
					ProjectID: projectIDs[randomInt(0, len(projectIDs)-1)],
					StartAt:   segStart,
					EndAt:     &segEnd,
				}
				if err := a.repo.CreateSegment(ctx, &seg); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (a *apiImpl) ensureProject(ctx context.Context, name string, archived bool) (*domain.Project, error) {
	existing, err := a.FindProjectByName(ctx, name)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			project := domain.NewProject(name, nowMillis())
			project.Archived = archived
			dbProject := a.mapper.Project.ToDatabase(project)
			if err := a.repo.CreateProject(ctx, &dbProject); err != nil {
				return nil, err
			}
			created := a.mapper.Project.FromDatabase(dbProject)
			return &created, nil
		}
		return nil, err
	}
	return existing, nil
}

func randomInt(min, max int) int {
	return min + rand.Intn(max-min+1)
}
