package coupon

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired  = errors.New("coupon has expired")
	ErrCouponInactive = errors.New("coupon is not active")
	ErrEmptyCode      = errors.New("coupon code cannot be empty")
)

// Coupon is an owner-issued discount code. Codes are case-insensitive and
// unique per owner; a coupon never applies to a resource outside its
// issuing owner.
type Coupon struct {
	id         uuid.UUID
	code       Code
	ownerID    uuid.UUID
	discount   Discount
	expiryDate time.Time
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	ownerID uuid.UUID,
	discount Discount,
	expiryDate time.Time,
	active bool,
) (*Coupon, error) {
	couponCode, err := NewCode(code)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:         id,
		code:       couponCode,
		ownerID:    ownerID,
		discount:   discount,
		expiryDate: dateOf(expiryDate),
		active:     active,
	}, nil
}

// ValidateUsage checks the coupon against the given calendar date. The
// comparison is date-only: a coupon expiring today is still usable today.
func (c *Coupon) ValidateUsage(today time.Time) error {
	if !c.active {
		return ErrCouponInactive
	}
	if c.expiryDate.Before(dateOf(today)) {
		return ErrCouponExpired
	}
	return nil
}

// IssuedBy reports whether the coupon belongs to the given resource owner.
func (c *Coupon) IssuedBy(ownerID uuid.UUID) bool {
	return c.ownerID == ownerID
}

func (c *Coupon) ApplyDiscount(baseAmountCents int64) int64 {
	return c.discount.AmountOff(baseAmountCents)
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) OwnerID() uuid.UUID    { return c.ownerID }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) ExpiryDate() time.Time { return c.expiryDate }
func (c *Coupon) IsActive() bool        { return c.active }
func (c *Coupon) CreatedAt() time.Time  { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time  { return c.updatedAt }

// Code is the normalized (upper-cased, trimmed) coupon code.
type Code string

func NewCode(raw string) (Code, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if normalized == "" {
		return "", ErrEmptyCode
	}
	return Code(normalized), nil
}

func (c Code) String() string { return string(c) }

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
