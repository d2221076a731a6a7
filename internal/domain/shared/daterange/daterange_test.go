//go:build unit

package daterange_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/shared/daterange"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		r, err := daterange.New(date(2026, 3, 10), date(2026, 3, 13))
		require.NoError(t, err)

		assert.Equal(t, date(2026, 3, 10), r.Start())
		assert.Equal(t, date(2026, 3, 13), r.End())
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		r, err := daterange.New(
			time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		assert.Equal(t, date(2026, 3, 10), r.Start())
		assert.Equal(t, date(2026, 3, 11), r.End())
		assert.Equal(t, 1, r.Nights())
	})

	t.Run("start equal to end is invalid", func(t *testing.T) {
		_, err := daterange.New(date(2026, 3, 10), date(2026, 3, 10))
		assert.ErrorIs(t, err, daterange.ErrInvalidInterval)
	})

	t.Run("start after end is invalid", func(t *testing.T) {
		_, err := daterange.New(date(2026, 3, 13), date(2026, 3, 10))
		assert.ErrorIs(t, err, daterange.ErrInvalidInterval)
	})

	t.Run("same calendar date with different times is invalid", func(t *testing.T) {
		_, err := daterange.New(
			time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC),
		)
		assert.ErrorIs(t, err, daterange.ErrInvalidInterval)
	})
}

func TestSingleDay(t *testing.T) {
	r := daterange.SingleDay(date(2026, 7, 1))

	assert.Equal(t, date(2026, 7, 1), r.Start())
	assert.Equal(t, date(2026, 7, 2), r.End())
	assert.Equal(t, 1, r.Nights())
	assert.Equal(t, []time.Time{date(2026, 7, 1)}, r.Dates())
}

func TestDates(t *testing.T) {
	t.Run("end date is excluded", func(t *testing.T) {
		r, err := daterange.New(date(2026, 3, 10), date(2026, 3, 13))
		require.NoError(t, err)

		assert.Equal(t, []time.Time{
			date(2026, 3, 10),
			date(2026, 3, 11),
			date(2026, 3, 12),
		}, r.Dates())
	})
}

func TestContainedIn(t *testing.T) {
	r, err := daterange.New(date(2026, 3, 10), date(2026, 3, 13))
	require.NoError(t, err)

	cases := []struct {
		name       string
		rangeStart time.Time
		rangeEnd   time.Time
		want       bool
	}{
		{"strictly inside", date(2026, 3, 1), date(2026, 3, 31), true},
		{"exact boundaries", date(2026, 3, 10), date(2026, 3, 13), true},
		{"starts before range", date(2026, 3, 11), date(2026, 3, 31), false},
		{"ends after range", date(2026, 3, 1), date(2026, 3, 12), false},
		{"fully outside", date(2026, 4, 1), date(2026, 4, 30), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.ContainedIn(tc.rangeStart, tc.rangeEnd))
		})
	}
}

func TestOverlaps(t *testing.T) {
	base, err := daterange.New(date(2026, 3, 10), date(2026, 3, 13))
	require.NoError(t, err)

	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"identical", date(2026, 3, 10), date(2026, 3, 13), true},
		{"partial overlap at end", date(2026, 3, 12), date(2026, 3, 15), true},
		{"back to back after checkout", date(2026, 3, 13), date(2026, 3, 15), false},
		{"back to back before checkin", date(2026, 3, 8), date(2026, 3, 10), false},
		{"disjoint", date(2026, 4, 1), date(2026, 4, 3), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other, err := daterange.New(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, base.Overlaps(other))
		})
	}
}

func TestContains(t *testing.T) {
	r, err := daterange.New(date(2026, 3, 10), date(2026, 3, 13))
	require.NoError(t, err)

	assert.True(t, r.Contains(date(2026, 3, 10)))
	assert.True(t, r.Contains(date(2026, 3, 12)))
	assert.False(t, r.Contains(date(2026, 3, 13)), "checkout date is not occupied")
	assert.False(t, r.Contains(date(2026, 3, 9)))
}
