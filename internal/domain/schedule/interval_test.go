//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"miyzapis/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 14, hour, min, 0, 0, time.UTC)
}

func iv(t *testing.T, startHour, startMin, endHour, endMin int) schedule.Interval {
	t.Helper()
	interval, err := schedule.NewInterval(at(startHour, startMin), at(endHour, endMin))
	require.NoError(t, err)
	return interval
}

func TestNewInterval(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		interval, err := schedule.NewInterval(at(9, 0), at(10, 0))
		require.NoError(t, err)
		assert.Equal(t, at(9, 0), interval.Start())
		assert.Equal(t, at(10, 0), interval.End())
		assert.Equal(t, time.Hour, interval.Duration())
	})

	t.Run("zero-length interval rejected", func(t *testing.T) {
		_, err := schedule.NewInterval(at(9, 0), at(9, 0))
		require.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})

	t.Run("reversed interval rejected", func(t *testing.T) {
		_, err := schedule.NewInterval(at(10, 0), at(9, 0))
		require.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name    string
		a, b    schedule.Interval
		overlap bool
	}{
		{name: "partial overlap", a: iv(t, 9, 0, 11, 0), b: iv(t, 10, 0, 12, 0), overlap: true},
		{name: "identical intervals", a: iv(t, 9, 0, 10, 0), b: iv(t, 9, 0, 10, 0), overlap: true},
		{name: "containment", a: iv(t, 9, 0, 12, 0), b: iv(t, 10, 0, 11, 0), overlap: true},
		{name: "touching endpoints do not overlap", a: iv(t, 9, 0, 10, 0), b: iv(t, 10, 0, 11, 0), overlap: false},
		{name: "disjoint", a: iv(t, 9, 0, 10, 0), b: iv(t, 11, 0, 12, 0), overlap: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlap, c.a.Overlaps(c.b))
			assert.Equal(t, c.overlap, c.b.Overlaps(c.a), "overlap must be symmetric")
		})
	}
}

func TestIntervalContains(t *testing.T) {
	outer := iv(t, 9, 0, 17, 0)

	assert.True(t, outer.Contains(iv(t, 10, 0, 11, 0)))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(iv(t, 8, 0, 10, 0)))
	assert.False(t, outer.Contains(iv(t, 16, 0, 18, 0)))
}

func TestIntervalSubtract(t *testing.T) {
	base := iv(t, 9, 0, 17, 0)

	t.Run("block inside splits into two", func(t *testing.T) {
		got := base.Subtract(iv(t, 12, 0, 13, 0))
		require.Len(t, got, 2)
		assert.Equal(t, at(9, 0), got[0].Start())
		assert.Equal(t, at(12, 0), got[0].End())
		assert.Equal(t, at(13, 0), got[1].Start())
		assert.Equal(t, at(17, 0), got[1].End())
	})

	t.Run("block overlapping start truncates", func(t *testing.T) {
		got := base.Subtract(iv(t, 8, 0, 10, 0))
		require.Len(t, got, 1)
		assert.Equal(t, at(10, 0), got[0].Start())
		assert.Equal(t, at(17, 0), got[0].End())
	})

	t.Run("block overlapping end truncates", func(t *testing.T) {
		got := base.Subtract(iv(t, 16, 0, 18, 0))
		require.Len(t, got, 1)
		assert.Equal(t, at(9, 0), got[0].Start())
		assert.Equal(t, at(16, 0), got[0].End())
	})

	t.Run("covering block removes everything", func(t *testing.T) {
		got := base.Subtract(iv(t, 8, 0, 18, 0))
		assert.Empty(t, got)
	})

	t.Run("disjoint block leaves interval untouched", func(t *testing.T) {
		got := base.Subtract(iv(t, 18, 0, 19, 0))
		require.Len(t, got, 1)
		assert.Equal(t, base, got[0])
	})

	t.Run("touching block leaves interval untouched", func(t *testing.T) {
		got := base.Subtract(iv(t, 17, 0, 18, 0))
		require.Len(t, got, 1)
		assert.Equal(t, base, got[0])
	})
}
