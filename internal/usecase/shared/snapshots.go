package shared

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/coupon"
	"stayhub/internal/domain/resource"
	"stayhub/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

// Snapshots are flat read models handed across the repository boundary.
// Commands rebuild domain entities from them before applying rules.

type DateRangeSnapshot struct {
	Start time.Time
	End   time.Time
}

type ResourceSnapshot struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Category        string
	BasePriceCents  int64
	MaxOccupancy    int
	AvailableRanges []DateRangeSnapshot
	BookedDates     []time.Time
}

func (s *ResourceSnapshot) ToEntity() (*resource.Resource, error) {
	ranges := make([]resource.AvailableRange, len(s.AvailableRanges))
	for i, r := range s.AvailableRanges {
		ranges[i] = resource.AvailableRange{Start: r.Start, End: r.End}
	}
	return resource.NewResource(
		s.ID, s.OwnerID, s.Name, resource.Category(s.Category),
		s.BasePriceCents, s.MaxOccupancy, ranges, s.BookedDates,
	)
}

type CouponSnapshot struct {
	ID            uuid.UUID
	Code          string
	OwnerID       uuid.UUID
	DiscountType  string
	DiscountValue int64
	ExpiryDate    time.Time
	Active        bool
}

func (s *CouponSnapshot) ToEntity() (*coupon.Coupon, error) {
	discount, err := coupon.NewDiscount(coupon.DiscountType(s.DiscountType), s.DiscountValue)
	if err != nil {
		return nil, err
	}
	return coupon.NewCoupon(s.ID, s.Code, s.OwnerID, discount, s.ExpiryDate, s.Active)
}

type BookingSnapshot struct {
	ID             uuid.UUID
	ResourceID     uuid.UUID
	RequesterID    uuid.UUID
	OwnerID        uuid.UUID
	StartDate      time.Time
	EndDate        time.Time
	GuestCount     int
	BaseAmount     int64
	DiscountAmount int64
	PointsUsed     int64
	ServiceFee     int64
	GrandTotal     int64
	CouponID       *uuid.UUID
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (s *BookingSnapshot) ToEntity() (*booking.Booking, error) {
	interval, err := daterange.New(s.StartDate, s.EndDate)
	if err != nil {
		return nil, err
	}
	return booking.Reconstruct(
		s.ID, s.ResourceID, s.RequesterID, s.OwnerID,
		interval, s.GuestCount,
		booking.Breakdown{
			BaseAmount:     s.BaseAmount,
			DiscountAmount: s.DiscountAmount,
			PointsUsed:     s.PointsUsed,
			ServiceFee:     s.ServiceFee,
			GrandTotal:     s.GrandTotal,
		},
		s.CouponID, booking.Status(s.Status), s.CreatedAt, s.UpdatedAt,
	), nil
}

type UserSnapshot struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	Role          string
	EmailVerified bool
	LoyaltyPoints int64
	IsActive      bool
}

type IdempotencyStatus string

const (
	IdempotencyProcessing IdempotencyStatus = "processing"
	IdempotencyCompleted  IdempotencyStatus = "completed"
)

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Endpoint        string
	RequestHash     string
	Status          IdempotencyStatus
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}
