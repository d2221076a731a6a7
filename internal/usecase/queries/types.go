package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID              uuid.UUID  `json:"id"`
	ResourceID      uuid.UUID  `json:"resource_id"`
	ResourceName    string     `json:"resource_name"`
	RequesterID     uuid.UUID  `json:"requester_id"`
	RequesterEmail  string     `json:"requester_email"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	GuestCount      int32      `json:"guest_count"`
	Status          string     `json:"status"`
	BaseAmountCents int64      `json:"base_amount_cents"`
	DiscountCents   int64      `json:"discount_cents"`
	PointsUsed      int64      `json:"points_used"`
	ServiceFeeCents int64      `json:"service_fee_cents"`
	TotalCents      int64      `json:"total_cents"`
	CouponID        *uuid.UUID `json:"coupon_id,omitempty"`
	CouponCode      *string    `json:"coupon_code,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

type ResourceView struct {
	ID             uuid.UUID `json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	BasePriceCents int64     `json:"base_price_cents"`
	MaxOccupancy   int32     `json:"max_occupancy"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	LoyaltyPoints int64     `json:"loyalty_points"`
	IsActive      bool      `json:"is_active"`
}
