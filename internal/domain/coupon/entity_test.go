//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newCoupon(t *testing.T, code string, expiry time.Time, active bool) *coupon.Coupon {
	t.Helper()
	discount, err := coupon.NewPercentageDiscount(10)
	require.NoError(t, err)
	c, err := coupon.NewCoupon(uuid.New(), code, uuid.New(), discount, expiry, active)
	require.NoError(t, err)
	return c
}

func TestNewCode(t *testing.T) {
	t.Run("codes are normalized to upper case", func(t *testing.T) {
		code, err := coupon.NewCode("  summer10 ")
		require.NoError(t, err)
		assert.Equal(t, "SUMMER10", code.String())
	})

	t.Run("empty code is rejected", func(t *testing.T) {
		_, err := coupon.NewCode("   ")
		assert.ErrorIs(t, err, coupon.ErrEmptyCode)
	})
}

func TestValidateUsage(t *testing.T) {
	expiry := date(2026, 6, 15)

	t.Run("valid before expiry", func(t *testing.T) {
		c := newCoupon(t, "SUMMER10", expiry, true)
		assert.NoError(t, c.ValidateUsage(date(2026, 6, 1)))
	})

	t.Run("usable on the expiry date itself", func(t *testing.T) {
		c := newCoupon(t, "SUMMER10", expiry, true)
		assert.NoError(t, c.ValidateUsage(date(2026, 6, 15)))
	})

	t.Run("usable late on the expiry date", func(t *testing.T) {
		// Comparison is date-only; 23:59 on the expiry date still passes.
		c := newCoupon(t, "SUMMER10", expiry, true)
		assert.NoError(t, c.ValidateUsage(time.Date(2026, 6, 15, 23, 59, 0, 0, time.UTC)))
	})

	t.Run("expired the day after", func(t *testing.T) {
		c := newCoupon(t, "SUMMER10", expiry, true)
		assert.ErrorIs(t, c.ValidateUsage(date(2026, 6, 16)), coupon.ErrCouponExpired)
	})

	t.Run("inactive coupon", func(t *testing.T) {
		c := newCoupon(t, "SUMMER10", expiry, false)
		assert.ErrorIs(t, c.ValidateUsage(date(2026, 6, 1)), coupon.ErrCouponInactive)
	})

	t.Run("inactive wins over expired", func(t *testing.T) {
		c := newCoupon(t, "SUMMER10", expiry, false)
		assert.ErrorIs(t, c.ValidateUsage(date(2026, 7, 1)), coupon.ErrCouponInactive)
	})
}

func TestIssuedBy(t *testing.T) {
	ownerID := uuid.New()
	discount, err := coupon.NewFixedDiscount(500)
	require.NoError(t, err)
	c, err := coupon.NewCoupon(uuid.New(), "FIVEOFF", ownerID, discount, date(2026, 12, 31), true)
	require.NoError(t, err)

	assert.True(t, c.IssuedBy(ownerID))
	assert.False(t, c.IssuedBy(uuid.New()))
}

func TestDiscount(t *testing.T) {
	t.Run("percentage rounds half up", func(t *testing.T) {
		d, err := coupon.NewPercentageDiscount(15)
		require.NoError(t, err)
		// 15% of 999 = 149.85 -> 150
		assert.Equal(t, int64(150), d.AmountOff(999))
	})

	t.Run("fixed discount is clamped to the base amount", func(t *testing.T) {
		d, err := coupon.NewFixedDiscount(5000)
		require.NoError(t, err)
		assert.Equal(t, int64(3000), d.AmountOff(3000))
	})

	t.Run("percentage bounds", func(t *testing.T) {
		_, err := coupon.NewPercentageDiscount(101)
		assert.ErrorIs(t, err, coupon.ErrInvalidPercentage)
		_, err = coupon.NewPercentageDiscount(-1)
		assert.ErrorIs(t, err, coupon.ErrInvalidPercentage)
	})

	t.Run("fixed amount must not be negative", func(t *testing.T) {
		_, err := coupon.NewFixedDiscount(-100)
		assert.Error(t, err)
	})

	t.Run("NewDiscount dispatches on type", func(t *testing.T) {
		d, err := coupon.NewDiscount(coupon.DiscountPercentage, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(200), d.AmountOff(1000))

		d, err = coupon.NewDiscount(coupon.DiscountFixed, 250)
		require.NoError(t, err)
		assert.Equal(t, int64(250), d.AmountOff(1000))

		_, err = coupon.NewDiscount(coupon.DiscountType("bogus"), 1)
		assert.ErrorIs(t, err, coupon.ErrInvalidDiscountType)
	})
}
