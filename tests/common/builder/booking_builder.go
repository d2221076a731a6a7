//go:build unit || e2e

package builder

import (
	"time"

	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID          uuid.UUID
	ResourceID  uuid.UUID
	RequesterID uuid.UUID
	OwnerID     uuid.UUID
	StartDate   string
	EndDate     string
	GuestCount  int
	CouponCode  *string
	PointsToUse int64
	Status      string
	BaseAmount  int64
	Discount    int64
	ServiceFee  int64
	Total       int64
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          uuid.New(),
		ResourceID:  uuid.New(),
		RequesterID: uuid.New(),
		OwnerID:     uuid.New(),
		StartDate:   "2026-06-10",
		EndDate:     "2026-06-13",
		GuestCount:  2,
		Status:      "pending",
		BaseAmount:  36000,
		Discount:    0,
		ServiceFee:  3600,
		Total:       39600,
	}
}

func (b *BookingBuilder) WithResource(id uuid.UUID) *BookingBuilder {
	b.ResourceID = id
	return b
}

func (b *BookingBuilder) WithRequester(id uuid.UUID) *BookingBuilder {
	b.RequesterID = id
	return b
}

func (b *BookingBuilder) WithDates(start, end string) *BookingBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *BookingBuilder) WithGuests(n int) *BookingBuilder {
	b.GuestCount = n
	return b
}

func (b *BookingBuilder) WithCoupon(code string) *BookingBuilder {
	b.CouponCode = &code
	return b
}

func (b *BookingBuilder) WithPoints(points int64) *BookingBuilder {
	b.PointsToUse = points
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	end := b.EndDate
	return reqdto.CreateBookingRequest{
		ResourceID:  b.ResourceID,
		StartDate:   b.StartDate,
		EndDate:     &end,
		GuestCount:  b.GuestCount,
		CouponCode:  b.CouponCode,
		PointsToUse: b.PointsToUse,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	start, _ := time.Parse("2006-01-02", b.StartDate)
	end, _ := time.Parse("2006-01-02", b.EndDate)
	now := time.Now().UTC()

	return &queries.BookingView{
		ID:              b.ID,
		ResourceID:      b.ResourceID,
		ResourceName:    "Seaside Cabin",
		RequesterID:     b.RequesterID,
		RequesterEmail:  "guest@example.com",
		OwnerID:         b.OwnerID,
		StartDate:       start,
		EndDate:         end,
		GuestCount:      int32(b.GuestCount),
		Status:          b.Status,
		BaseAmountCents: b.BaseAmount,
		DiscountCents:   b.Discount,
		PointsUsed:      b.PointsToUse,
		ServiceFeeCents: b.ServiceFee,
		TotalCents:      b.Total,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
