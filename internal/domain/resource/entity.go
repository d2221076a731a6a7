package resource

import (
	"errors"
	"strings"
	"time"

	"stayhub/internal/domain/shared/daterange"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrNegativeBasePrice   = errors.New("base price cannot be negative")
	ErrInvalidOccupancy    = errors.New("max occupancy must be at least 1")
	ErrInvalidCategory     = errors.New("invalid resource category")
)

const MaxResourceNameLength = 255

type Category string

const (
	CategoryStay       Category = "stay"
	CategoryExperience Category = "experience"
	CategoryService    Category = "service"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryStay, CategoryExperience, CategoryService:
		return true
	default:
		return false
	}
}

// AvailableRange is a closed calendar-date interval published by the host.
type AvailableRange struct {
	Start time.Time
	End   time.Time
}

// Resource is a bookable unit: a stay, an experience slot, or a service
// window. availableRanges empty means every future date is open. bookedDates
// holds the dates already committed by pending or confirmed bookings.
type Resource struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	name            string
	category        Category
	basePriceCents  int64
	maxOccupancy    int
	availableRanges []AvailableRange
	bookedDates     map[time.Time]struct{}
	createdAt       time.Time
	updatedAt       time.Time
}

func NewResource(
	id, ownerID uuid.UUID,
	name string,
	category Category,
	basePriceCents int64,
	maxOccupancy int,
	availableRanges []AvailableRange,
	bookedDates []time.Time,
) (*Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return nil, ErrResourceNameTooLong
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if basePriceCents < 0 {
		return nil, ErrNegativeBasePrice
	}
	if maxOccupancy < 1 {
		return nil, ErrInvalidOccupancy
	}

	booked := make(map[time.Time]struct{}, len(bookedDates))
	for _, d := range bookedDates {
		booked[dateOf(d)] = struct{}{}
	}

	normalized := make([]AvailableRange, len(availableRanges))
	for i, r := range availableRanges {
		normalized[i] = AvailableRange{Start: dateOf(r.Start), End: dateOf(r.End)}
	}

	return &Resource{
		id:              id,
		ownerID:         ownerID,
		name:            name,
		category:        category,
		basePriceCents:  basePriceCents,
		maxOccupancy:    maxOccupancy,
		availableRanges: normalized,
		bookedDates:     booked,
	}, nil
}

func (r *Resource) ID() uuid.UUID                     { return r.id }
func (r *Resource) OwnerID() uuid.UUID                { return r.ownerID }
func (r *Resource) Name() string                      { return r.name }
func (r *Resource) Category() Category                { return r.category }
func (r *Resource) BasePriceCents() int64             { return r.basePriceCents }
func (r *Resource) MaxOccupancy() int                 { return r.maxOccupancy }
func (r *Resource) AvailableRanges() []AvailableRange { return r.availableRanges }
func (r *Resource) CreatedAt() time.Time              { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time              { return r.updatedAt }

func (r *Resource) IsBooked(d time.Time) bool {
	_, ok := r.bookedDates[dateOf(d)]
	return ok
}

// BaseAmountFor scales the base price into the booking's base amount:
// per night for stays, per guest for experiences and services.
func (r *Resource) BaseAmountFor(interval daterange.DateRange, guestCount int) int64 {
	switch r.category {
	case CategoryStay:
		return r.basePriceCents * int64(interval.Nights())
	default:
		return r.basePriceCents * int64(guestCount)
	}
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
