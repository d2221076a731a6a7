package booking

import (
	"stayhub/internal/domain/coupon"
	"stayhub/internal/domain/resource"
	"stayhub/internal/domain/shared/daterange"
	"stayhub/internal/pkg/clock"

	"github.com/google/uuid"
)

// Factory assembles a pending Booking after every validation gate has
// passed: occupancy, availability, coupon usability and pricing. It holds
// the domain services the checks need; the caller supplies snapshots loaded
// from storage.
type Factory struct {
	Clock      clock.Clock
	Calculator *Calculator
}

func NewFactory(clk clock.Clock, calc *Calculator) *Factory {
	return &Factory{
		Clock:      clk,
		Calculator: calc,
	}
}

func (f *Factory) CreateBooking(
	res *resource.Resource,
	requesterID uuid.UUID,
	interval daterange.DateRange,
	guestCount int,
	coup *coupon.Coupon,
	pointsRequested int64,
	pointsAvailable int64,
	feePercent int64,
) (*Booking, error) {
	if err := res.CheckOccupancy(guestCount); err != nil {
		return nil, err
	}
	if err := res.CheckBookable(interval); err != nil {
		return nil, err
	}

	var discount *coupon.Discount
	var couponID *uuid.UUID
	if coup != nil {
		if err := coup.ValidateUsage(clock.Today(f.Clock)); err != nil {
			return nil, err
		}
		d := coup.Discount()
		discount = &d
		id := coup.ID()
		couponID = &id
	}

	baseAmount := res.BaseAmountFor(interval, guestCount)
	breakdown, err := f.Calculator.Compute(baseAmount, discount, pointsRequested, pointsAvailable, feePercent)
	if err != nil {
		return nil, err
	}

	return NewBooking(res.ID(), requesterID, res.OwnerID(), interval, guestCount, breakdown, couponID)
}
