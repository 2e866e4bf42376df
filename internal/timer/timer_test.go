package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timekeep/internal/domain"
)

func seg(id string, startAt int64, endAt *int64) *domain.Segment {
	return &domain.Segment{ID: id, SessionID: "session-1", StartAt: startAt, EndAt: endAt}
}

func ptr(v int64) *int64 {
	return &v
}

func TestComputeElapsedMs(t *testing.T) {
	t.Run("should return zero for no segments", func(t *testing.T) {
		assert.Equal(t, int64(0), ComputeElapsedMs(nil, nil, 5000))
	})

	t.Run("should sum closed segments", func(t *testing.T) {
		segments := []*domain.Segment{
			seg("a", 1000, ptr(4000)),
			seg("b", 4000, ptr(9000)),
		}
		assert.Equal(t, int64(8000), ComputeElapsedMs(segments, nil, 20000))
	})

	t.Run("should run the open segment to now", func(t *testing.T) {
		segments := []*domain.Segment{
			seg("a", 1000, ptr(4000)),
			seg("b", 4000, nil),
		}
		assert.Equal(t, int64(9000), ComputeElapsedMs(segments, nil, 10000))
	})

	t.Run("should freeze the open segment at pausedAt", func(t *testing.T) {
		segments := []*domain.Segment{
			seg("a", 1000, ptr(4000)),
			seg("b", 4000, nil),
		}
		paused := ptr(6000)

		got := ComputeElapsedMs(segments, paused, 10000)
		assert.Equal(t, int64(5000), got)

		// Advancing now must not change a paused total.
		assert.Equal(t, got, ComputeElapsedMs(segments, paused, 50000))
		assert.Equal(t, got, ComputeElapsedMs(segments, paused, 500000))
	})

	t.Run("should treat only the first endless segment as open", func(t *testing.T) {
		segments := []*domain.Segment{
			seg("a", 1000, nil),
			seg("b", 2000, nil),
		}
		// The second endless segment contributes zero.
		assert.Equal(t, int64(9000), ComputeElapsedMs(segments, nil, 10000))
	})

	t.Run("should not clamp a negative closed span", func(t *testing.T) {
		segments := []*domain.Segment{
			seg("a", 5000, ptr(3000)),
			seg("b", 1000, ptr(2000)),
		}
		assert.Equal(t, int64(-1000), ComputeElapsedMs(segments, nil, 10000))
	})
}

func TestComputeSessionDurationMs(t *testing.T) {
	t.Run("should return zero for no segments", func(t *testing.T) {
		assert.Equal(t, int64(0), ComputeSessionDurationMs(nil, 5000))
	})

	t.Run("should sum closed segments", func(t *testing.T) {
		segments := []*domain.Segment{
			seg("a", 1000, ptr(4000)),
			seg("b", 6000, ptr(7500)),
		}
		assert.Equal(t, int64(4500), ComputeSessionDurationMs(segments, 20000))
	})

	t.Run("should run open segments to now", func(t *testing.T) {
		segments := []*domain.Segment{
			seg("a", 1000, ptr(4000)),
			seg("b", 4000, nil),
		}
		assert.Equal(t, int64(9000), ComputeSessionDurationMs(segments, 10000))
	})

	t.Run("should floor each negative span at zero", func(t *testing.T) {
		segments := []*domain.Segment{
			seg("a", 5000, ptr(3000)),
			seg("b", 1000, ptr(2000)),
		}
		assert.Equal(t, int64(1000), ComputeSessionDurationMs(segments, 10000))
	})

	t.Run("should floor an open segment that starts in the future", func(t *testing.T) {
		segments := []*domain.Segment{seg("a", 9000, nil)}
		assert.Equal(t, int64(0), ComputeSessionDurationMs(segments, 5000))
	})
}
