//go:build unit

package booking_test

import (
	"testing"
	"time"

	"miyzapis/internal/domain/booking"
	"miyzapis/internal/domain/schedule"
	"miyzapis/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateAt(t *testing.T, start time.Time, durationMin int) schedule.Interval {
	t.Helper()
	iv, err := schedule.NewInterval(start, start.Add(time.Duration(durationMin)*time.Minute))
	require.NoError(t, err)
	return iv
}

func existingAt(start time.Time, durationMin int, status booking.Status) *booking.Booking {
	b := builder.NewBookingBuilder()
	b.ScheduledAt = start
	b.DurationMin = durationMin
	return b.BuildReconstructed(status)
}

func TestFindConflict(t *testing.T) {
	base := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	t.Run("overlapping active booking conflicts", func(t *testing.T) {
		existing := []*booking.Booking{existingAt(base, 60, booking.StatusConfirmed)}
		candidate := candidateAt(t, base.Add(30*time.Minute), 60)

		conflict := booking.FindConflict(candidate, existing)
		require.NotNil(t, conflict)
		assert.Equal(t, existing[0].ID(), conflict.ID())
		assert.True(t, booking.HasConflict(candidate, existing))
	})

	t.Run("every active status blocks", func(t *testing.T) {
		for _, status := range booking.ActiveStatuses {
			existing := []*booking.Booking{existingAt(base, 60, status)}
			candidate := candidateAt(t, base, 60)
			assert.NotNil(t, booking.FindConflict(candidate, existing), "status %s", status)
		}
	})

	t.Run("cancelled booking does not block", func(t *testing.T) {
		existing := []*booking.Booking{existingAt(base, 60, booking.StatusCancelled)}
		candidate := candidateAt(t, base, 60)
		assert.Nil(t, booking.FindConflict(candidate, existing))
	})

	t.Run("completed booking does not block", func(t *testing.T) {
		existing := []*booking.Booking{existingAt(base, 60, booking.StatusCompleted)}
		candidate := candidateAt(t, base, 60)
		assert.Nil(t, booking.FindConflict(candidate, existing))
	})

	t.Run("back to back bookings are compatible", func(t *testing.T) {
		existing := []*booking.Booking{existingAt(base, 60, booking.StatusConfirmed)}

		after := candidateAt(t, base.Add(time.Hour), 60)
		assert.Nil(t, booking.FindConflict(after, existing))

		before := candidateAt(t, base.Add(-time.Hour), 60)
		assert.Nil(t, booking.FindConflict(before, existing))
	})

	t.Run("first overlapping booking returned", func(t *testing.T) {
		existing := []*booking.Booking{
			existingAt(base, 60, booking.StatusCancelled),
			existingAt(base, 30, booking.StatusPending),
			existingAt(base.Add(30*time.Minute), 30, booking.StatusConfirmed),
		}
		candidate := candidateAt(t, base, 60)

		conflict := booking.FindConflict(candidate, existing)
		require.NotNil(t, conflict)
		assert.Equal(t, existing[1].ID(), conflict.ID())
	})

	t.Run("empty snapshot never conflicts", func(t *testing.T) {
		candidate := candidateAt(t, base, 60)
		assert.Nil(t, booking.FindConflict(candidate, nil))
	})
}
