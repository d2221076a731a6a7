package booking

import (
	"errors"

	"stayhub/internal/domain/coupon"
)

var (
	ErrNegativeBaseAmount = errors.New("base amount cannot be negative")
	ErrNegativePoints     = errors.New("points cannot be negative")
	ErrInvalidFeePercent  = errors.New("fee percent must be between 0 and 100")
)

// Breakdown is the audited result of a price computation, in cents.
type Breakdown struct {
	BaseAmount     int64
	DiscountAmount int64
	PointsUsed     int64
	ServiceFee     int64
	GrandTotal     int64
}

func (b Breakdown) TotalBeforeFee() int64 {
	return b.GrandTotal - b.ServiceFee
}

// Calculator combines base amount, coupon discount, loyalty-point redemption
// and the platform service fee. There is exactly one of these: the same
// computation serves stays, experiences and service windows, with only the
// fee percent varying per category.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute applies the discount pipeline in fixed order:
//
//	discount -> points -> service fee
//
// Points never push the payable amount below zero and never exceed the
// account balance. All arithmetic is integer cents; the two percentage
// steps round half up.
func (c *Calculator) Compute(
	baseAmountCents int64,
	discount *coupon.Discount,
	pointsRequested int64,
	pointsAvailable int64,
	feePercent int64,
) (Breakdown, error) {
	if baseAmountCents < 0 {
		return Breakdown{}, ErrNegativeBaseAmount
	}
	if pointsRequested < 0 || pointsAvailable < 0 {
		return Breakdown{}, ErrNegativePoints
	}
	if feePercent < 0 || feePercent > 100 {
		return Breakdown{}, ErrInvalidFeePercent
	}

	var discountAmount int64
	if discount != nil {
		discountAmount = discount.AmountOff(baseAmountCents)
	}

	afterCoupon := baseAmountCents - discountAmount
	if afterCoupon < 0 {
		afterCoupon = 0
	}

	pointsUsed := min(pointsRequested, afterCoupon, pointsAvailable)

	totalBeforeFee := afterCoupon - pointsUsed
	serviceFee := (totalBeforeFee*feePercent + 50) / 100

	return Breakdown{
		BaseAmount:     baseAmountCents,
		DiscountAmount: discountAmount,
		PointsUsed:     pointsUsed,
		ServiceFee:     serviceFee,
		GrandTotal:     totalBeforeFee + serviceFee,
	}, nil
}
