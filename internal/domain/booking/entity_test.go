//go:build unit

package booking_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/shared/daterange"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func pendingBooking(t *testing.T) (*booking.Booking, uuid.UUID, uuid.UUID) {
	t.Helper()
	requesterID := uuid.New()
	ownerID := uuid.New()
	interval, err := daterange.New(date(2026, 3, 10), date(2026, 3, 13))
	require.NoError(t, err)

	b, err := booking.NewBooking(uuid.New(), requesterID, ownerID, interval, 2, booking.Breakdown{
		BaseAmount: 36000, ServiceFee: 3600, GrandTotal: 39600,
	}, nil)
	require.NoError(t, err)
	return b, requesterID, ownerID
}

func TestNewBooking(t *testing.T) {
	t.Run("starts pending with a fresh id", func(t *testing.T) {
		b, _, _ := pendingBooking(t)
		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.True(t, b.IsPending())
	})

	t.Run("zero interval is rejected", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.New(), uuid.New(), uuid.New(), daterange.DateRange{}, 2, booking.Breakdown{}, nil)
		assert.ErrorIs(t, err, daterange.ErrInvalidInterval)
	})

	t.Run("guest count below one is rejected", func(t *testing.T) {
		interval, err := daterange.New(date(2026, 3, 10), date(2026, 3, 13))
		require.NoError(t, err)
		_, err = booking.NewBooking(uuid.New(), uuid.New(), uuid.New(), interval, 0, booking.Breakdown{}, nil)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})
}

func TestConfirm(t *testing.T) {
	t.Run("owner confirms a pending booking", func(t *testing.T) {
		b, _, ownerID := pendingBooking(t)
		require.NoError(t, b.Confirm(ownerID))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("requester cannot confirm", func(t *testing.T) {
		b, requesterID, _ := pendingBooking(t)
		assert.ErrorIs(t, b.Confirm(requesterID), booking.ErrNotOwner)
		assert.True(t, b.IsPending())
	})

	t.Run("confirm is not repeatable", func(t *testing.T) {
		b, _, ownerID := pendingBooking(t)
		require.NoError(t, b.Confirm(ownerID))
		assert.ErrorIs(t, b.Confirm(ownerID), booking.ErrNotPending)
	})
}

func TestReject(t *testing.T) {
	t.Run("owner rejects a pending booking", func(t *testing.T) {
		b, _, ownerID := pendingBooking(t)
		require.NoError(t, b.Reject(ownerID))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("reject after confirm fails", func(t *testing.T) {
		b, _, ownerID := pendingBooking(t)
		require.NoError(t, b.Confirm(ownerID))
		assert.ErrorIs(t, b.Reject(ownerID), booking.ErrNotPending)
	})
}

func TestCancel(t *testing.T) {
	t.Run("requester cancels a pending booking", func(t *testing.T) {
		b, requesterID, _ := pendingBooking(t)
		require.NoError(t, b.Cancel(requesterID))
		assert.Equal(t, booking.StatusCancelled, b.Status())
	})

	t.Run("owner cannot cancel", func(t *testing.T) {
		b, _, ownerID := pendingBooking(t)
		assert.ErrorIs(t, b.Cancel(ownerID), booking.ErrNotRequester)
	})

	t.Run("cancel after owner decided fails", func(t *testing.T) {
		b, requesterID, ownerID := pendingBooking(t)
		require.NoError(t, b.Confirm(ownerID))
		assert.ErrorIs(t, b.Cancel(requesterID), booking.ErrNotPending)
	})
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusPending.IsValid())
	assert.False(t, booking.Status("unknown").IsValid())

	assert.False(t, booking.StatusPending.IsTerminal())
	assert.True(t, booking.StatusConfirmed.IsTerminal())
	assert.True(t, booking.StatusRejected.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
}
