package api

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timekeep/internal/repository/sqlite"
)

// testClock pins nowMillis so tests control every timestamp the API
// writes.
type testClock struct {
	now int64
}

func (c *testClock) Advance(ms int64) {
	c.now += ms
}

func (c *testClock) Set(ms int64) {
	c.now = ms
}

func setupTestAPI(t *testing.T) (API, *testClock) {
	t.Helper()

	repo, err := sqlite.New(filepath.Join(t.TempDir(), "timekeep.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
	})

	clock := &testClock{now: time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC).UnixMilli()}
	previous := nowMillis
	nowMillis = func() int64 { return clock.now }
	t.Cleanup(func() {
		nowMillis = previous
	})

	return NewWithLocation(repo, time.UTC), clock
}

func int64Ptr(v int64) *int64 {
	return &v
}

func strPtr(v string) *string {
	return &v
}
