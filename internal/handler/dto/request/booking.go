package request

import (
	"strings"
	"time"

	"stayhub/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// CreateBookingRequest books a resource for a date interval. end_date is
// exclusive (checkout day for stays); omit it to book a single calendar day.
type CreateBookingRequest struct {
	ResourceID  uuid.UUID `json:"resource_id" binding:"required"`
	StartDate   string    `json:"start_date" binding:"required"`
	EndDate     *string   `json:"end_date,omitempty"`
	GuestCount  int       `json:"guest_count" binding:"required,min=1"`
	CouponCode  *string   `json:"coupon_code,omitempty"`
	PointsToUse int64     `json:"points_to_use,omitempty" binding:"omitempty,min=0"`
}

func (r CreateBookingRequest) GetCouponCode() *string {
	if r.CouponCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.CouponCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ToInterval parses the date fields into the booking interval.
func (r CreateBookingRequest) ToInterval() (daterange.DateRange, error) {
	start, err := time.ParseInLocation(dateLayout, r.StartDate, time.UTC)
	if err != nil {
		return daterange.DateRange{}, daterange.ErrInvalidInterval
	}

	if r.EndDate == nil || strings.TrimSpace(*r.EndDate) == "" {
		return daterange.SingleDay(start), nil
	}

	end, err := time.ParseInLocation(dateLayout, *r.EndDate, time.UTC)
	if err != nil {
		return daterange.DateRange{}, daterange.ErrInvalidInterval
	}
	return daterange.New(start, end)
}
