package coupon

import "errors"

var (
	ErrInvalidPercentage   = errors.New("percentage discount must be between 0 and 100")
	ErrNegativeDiscount    = errors.New("discount value cannot be negative")
	ErrInvalidDiscountType = errors.New("invalid discount type")
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is either a percentage of the base amount or a fixed number of
// cents. A fixed discount is clamped to the base amount when applied so a
// total can never go negative.
type Discount struct {
	kind  DiscountType
	value int64
}

func NewPercentageDiscount(percent int64) (Discount, error) {
	if percent < 0 || percent > 100 {
		return Discount{}, ErrInvalidPercentage
	}
	return Discount{kind: DiscountPercentage, value: percent}, nil
}

func NewFixedDiscount(cents int64) (Discount, error) {
	if cents < 0 {
		return Discount{}, ErrNegativeDiscount
	}
	return Discount{kind: DiscountFixed, value: cents}, nil
}

// NewDiscount builds a discount from its persisted representation.
func NewDiscount(kind DiscountType, value int64) (Discount, error) {
	switch kind {
	case DiscountPercentage:
		return NewPercentageDiscount(value)
	case DiscountFixed:
		return NewFixedDiscount(value)
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType { return d.kind }
func (d Discount) Value() int64       { return d.value }

func (d Discount) IsPercentage() bool {
	return d.kind == DiscountPercentage
}

// AmountOff computes the discount in cents for the given base amount.
// Percentage discounts round half up; fixed discounts clamp to the base.
func (d Discount) AmountOff(baseAmountCents int64) int64 {
	if baseAmountCents <= 0 {
		return 0
	}
	if d.kind == DiscountPercentage {
		return (baseAmountCents*d.value + 50) / 100
	}
	if d.value > baseAmountCents {
		return baseAmountCents
	}
	return d.value
}
