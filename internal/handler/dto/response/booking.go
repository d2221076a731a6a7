package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	ResourceID      uuid.UUID  `json:"resourceId"`
	ResourceName    string     `json:"resourceName"`
	RequesterID     uuid.UUID  `json:"requesterId"`
	RequesterEmail  string     `json:"requesterEmail"`
	OwnerID         uuid.UUID  `json:"ownerId"`
	StartDate       time.Time  `json:"startDate"`
	EndDate         time.Time  `json:"endDate"`
	GuestCount      int32      `json:"guestCount"`
	Status          string     `json:"status"`
	BaseAmountCents int64      `json:"baseAmountCents"`
	DiscountCents   int64      `json:"discountCents"`
	PointsUsed      int64      `json:"pointsUsed"`
	ServiceFeeCents int64      `json:"serviceFeeCents"`
	TotalCents      int64      `json:"totalCents"`
	CouponID        *uuid.UUID `json:"couponId,omitempty"`
	CouponCode      *string    `json:"couponCode,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	ResourceID   uuid.UUID `json:"resourceId"`
	ResourceName string    `json:"resourceName"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"totalCents"`
	CreatedAt    time.Time `json:"createdAt"`
}

type BookingPageResponse struct {
	Items      []*BookingListResponse `json:"items"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingListItems(items []*queries.BookingListItem, next *queries.Cursor) *BookingPageResponse {
	page := &BookingPageResponse{Items: make([]*BookingListResponse, len(items))}
	for i, item := range items {
		var resp BookingListResponse
		_ = copier.Copy(&resp, item)
		page.Items[i] = &resp
	}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page
}
