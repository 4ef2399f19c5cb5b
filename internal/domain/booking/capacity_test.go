//go:build unit

package booking_test

import (
	"fmt"
	"testing"
	"time"

	"miyzapis/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSessionKey(t *testing.T) {
	serviceID := uuid.New()
	scheduledAt := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t,
			booking.GroupSessionKey(serviceID, scheduledAt),
			booking.GroupSessionKey(serviceID, scheduledAt),
		)
	})

	t.Run("uses epoch milliseconds", func(t *testing.T) {
		expected := fmt.Sprintf("%s_%d", serviceID, scheduledAt.UnixMilli())
		assert.Equal(t, expected, booking.GroupSessionKey(serviceID, scheduledAt))
	})

	t.Run("same instant in another zone produces same key", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		assert.Equal(t,
			booking.GroupSessionKey(serviceID, scheduledAt),
			booking.GroupSessionKey(serviceID, scheduledAt.In(tokyo)),
		)
	})

	t.Run("different inputs produce different keys", func(t *testing.T) {
		assert.NotEqual(t,
			booking.GroupSessionKey(serviceID, scheduledAt),
			booking.GroupSessionKey(uuid.New(), scheduledAt),
		)
		assert.NotEqual(t,
			booking.GroupSessionKey(serviceID, scheduledAt),
			booking.GroupSessionKey(serviceID, scheduledAt.Add(time.Millisecond)),
		)
	})
}

func TestAvailableSpots(t *testing.T) {
	limit := func(n int) *int { return &n }

	t.Run("unlimited when no participant cap", func(t *testing.T) {
		spots := booking.AvailableSpots(120, nil)
		assert.True(t, spots.Available)
		assert.Nil(t, spots.SpotsLeft)
		assert.Equal(t, 120, spots.CurrentCount)
	})

	t.Run("spots remaining", func(t *testing.T) {
		spots := booking.AvailableSpots(3, limit(5))
		assert.True(t, spots.Available)
		require.NotNil(t, spots.SpotsLeft)
		assert.Equal(t, 2, *spots.SpotsLeft)
	})

	t.Run("exactly full", func(t *testing.T) {
		spots := booking.AvailableSpots(5, limit(5))
		assert.False(t, spots.Available)
		require.NotNil(t, spots.SpotsLeft)
		assert.Equal(t, 0, *spots.SpotsLeft)
	})

	t.Run("overbooked clamps to zero", func(t *testing.T) {
		spots := booking.AvailableSpots(7, limit(5))
		assert.False(t, spots.Available)
		require.NotNil(t, spots.SpotsLeft)
		assert.Equal(t, 0, *spots.SpotsLeft)
	})
}

func TestCanAccommodate(t *testing.T) {
	limit := func(n int) *int { return &n }

	cases := []struct {
		name      string
		current   int
		max       *int
		requested int
		want      bool
	}{
		{name: "fits exactly", current: 4, max: limit(5), requested: 1, want: true},
		{name: "one seat short", current: 4, max: limit(5), requested: 2, want: false},
		{name: "full session rejects", current: 5, max: limit(5), requested: 1, want: false},
		{name: "empty session admits group", current: 0, max: limit(5), requested: 5, want: true},
		{name: "unlimited admits any size", current: 1000, max: nil, requested: 50, want: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spots := booking.AvailableSpots(c.current, c.max)
			assert.Equal(t, c.want, booking.CanAccommodate(c.requested, spots))
		})
	}
}
