package resource

import (
	"errors"

	"stayhub/internal/domain/shared/daterange"
)

var (
	ErrInvalidInterval       = errors.New("invalid interval")
	ErrOutsideAvailableRange = errors.New("interval is outside the published available ranges")
	ErrDateAlreadyBooked     = errors.New("a requested date is already booked")
	ErrOccupancyExceeded     = errors.New("guest count exceeds max occupancy")
)

// CheckBookable decides whether the requested interval can be reserved.
// It is a pure predicate: callers must re-check transactionally at commit
// time because this check and the booking write are not atomic.
//
// Rules:
//   - the interval must be a valid start<end range (enforced by daterange);
//   - when availableRanges is non-empty, the whole interval must fit inside
//     exactly one closed range;
//   - no occupied date of the interval may already be booked.
func (r *Resource) CheckBookable(interval daterange.DateRange) error {
	if interval.IsZero() {
		return ErrInvalidInterval
	}

	if len(r.availableRanges) > 0 {
		contained := false
		for _, ar := range r.availableRanges {
			if interval.ContainedIn(ar.Start, ar.End) {
				contained = true
				break
			}
		}
		if !contained {
			return ErrOutsideAvailableRange
		}
	}

	for _, d := range interval.Dates() {
		if _, booked := r.bookedDates[d]; booked {
			return ErrDateAlreadyBooked
		}
	}

	return nil
}

// CheckOccupancy validates the requested guest count against the resource.
func (r *Resource) CheckOccupancy(guestCount int) error {
	if guestCount < 1 || guestCount > r.maxOccupancy {
		return ErrOccupancyExceeded
	}
	return nil
}
