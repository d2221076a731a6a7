//go:build unit

package resource_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/resource"
	"stayhub/internal/domain/shared/daterange"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) daterange.DateRange {
	t.Helper()
	r, err := daterange.New(start, end)
	require.NoError(t, err)
	return r
}

func newStay(t *testing.T, ranges []resource.AvailableRange, booked []time.Time) *resource.Resource {
	t.Helper()
	res, err := resource.NewResource(
		uuid.New(), uuid.New(),
		"Seaside Cabin",
		resource.CategoryStay,
		12000, 4,
		ranges, booked,
	)
	require.NoError(t, err)
	return res
}

func TestCheckBookable(t *testing.T) {
	season := []resource.AvailableRange{
		{Start: date(2026, 6, 1), End: date(2026, 6, 30)},
		{Start: date(2026, 8, 1), End: date(2026, 8, 31)},
	}

	t.Run("inside a published range", func(t *testing.T) {
		res := newStay(t, season, nil)
		err := res.CheckBookable(mustRange(t, date(2026, 6, 10), date(2026, 6, 13)))
		assert.NoError(t, err)
	})

	t.Run("range boundaries are inclusive", func(t *testing.T) {
		res := newStay(t, season, nil)
		err := res.CheckBookable(mustRange(t, date(2026, 6, 1), date(2026, 6, 30)))
		assert.NoError(t, err)
	})

	t.Run("spanning past the range end", func(t *testing.T) {
		res := newStay(t, season, nil)
		err := res.CheckBookable(mustRange(t, date(2026, 6, 28), date(2026, 7, 2)))
		assert.ErrorIs(t, err, resource.ErrOutsideAvailableRange)
	})

	t.Run("straddling two ranges", func(t *testing.T) {
		res := newStay(t, season, nil)
		err := res.CheckBookable(mustRange(t, date(2026, 6, 28), date(2026, 8, 3)))
		assert.ErrorIs(t, err, resource.ErrOutsideAvailableRange)
	})

	t.Run("no published ranges means every date is open", func(t *testing.T) {
		res := newStay(t, nil, nil)
		err := res.CheckBookable(mustRange(t, date(2027, 1, 1), date(2027, 1, 5)))
		assert.NoError(t, err)
	})

	t.Run("an already booked date blocks the interval", func(t *testing.T) {
		res := newStay(t, season, []time.Time{date(2026, 6, 11)})
		err := res.CheckBookable(mustRange(t, date(2026, 6, 10), date(2026, 6, 13)))
		assert.ErrorIs(t, err, resource.ErrDateAlreadyBooked)
	})

	t.Run("a booking may start on another booking's checkout date", func(t *testing.T) {
		// The prior stay [6/8, 6/10) occupies 6/8 and 6/9 only.
		res := newStay(t, season, []time.Time{date(2026, 6, 8), date(2026, 6, 9)})
		err := res.CheckBookable(mustRange(t, date(2026, 6, 10), date(2026, 6, 13)))
		assert.NoError(t, err)
	})

	t.Run("zero interval", func(t *testing.T) {
		res := newStay(t, season, nil)
		err := res.CheckBookable(daterange.DateRange{})
		assert.ErrorIs(t, err, resource.ErrInvalidInterval)
	})
}

func TestCheckOccupancy(t *testing.T) {
	res := newStay(t, nil, nil)

	assert.NoError(t, res.CheckOccupancy(1))
	assert.NoError(t, res.CheckOccupancy(4))
	assert.ErrorIs(t, res.CheckOccupancy(5), resource.ErrOccupancyExceeded)
	assert.ErrorIs(t, res.CheckOccupancy(0), resource.ErrOccupancyExceeded)
	assert.ErrorIs(t, res.CheckOccupancy(-1), resource.ErrOccupancyExceeded)
}

func TestBaseAmountFor(t *testing.T) {
	t.Run("stay charges per night", func(t *testing.T) {
		res := newStay(t, nil, nil)
		amount := res.BaseAmountFor(mustRange(t, date(2026, 6, 10), date(2026, 6, 13)), 2)
		assert.Equal(t, int64(36000), amount)
	})

	t.Run("experience charges per guest", func(t *testing.T) {
		res, err := resource.NewResource(
			uuid.New(), uuid.New(),
			"Kayak Tour",
			resource.CategoryExperience,
			5000, 10,
			nil, nil,
		)
		require.NoError(t, err)

		amount := res.BaseAmountFor(daterange.SingleDay(date(2026, 6, 10)), 3)
		assert.Equal(t, int64(15000), amount)
	})

	t.Run("service charges per guest", func(t *testing.T) {
		res, err := resource.NewResource(
			uuid.New(), uuid.New(),
			"Photo Session",
			resource.CategoryService,
			8000, 6,
			nil, nil,
		)
		require.NoError(t, err)

		amount := res.BaseAmountFor(daterange.SingleDay(date(2026, 6, 10)), 2)
		assert.Equal(t, int64(16000), amount)
	})
}

func TestNewResourceValidation(t *testing.T) {
	cases := []struct {
		name     string
		resName  string
		category resource.Category
		price    int64
		occ      int
		errIs    error
	}{
		{"valid", "Cabin", resource.CategoryStay, 1000, 2, nil},
		{"empty name", "  ", resource.CategoryStay, 1000, 2, resource.ErrEmptyResourceName},
		{"invalid category", "Cabin", resource.Category("hotel"), 1000, 2, resource.ErrInvalidCategory},
		{"negative price", "Cabin", resource.CategoryStay, -1, 2, resource.ErrNegativeBasePrice},
		{"zero occupancy", "Cabin", resource.CategoryStay, 1000, 0, resource.ErrInvalidOccupancy},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := resource.NewResource(uuid.New(), uuid.New(), tc.resName, tc.category, tc.price, tc.occ, nil, nil)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
