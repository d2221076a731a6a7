package daterange

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidInterval = errors.New("interval start must be strictly before end")

// DateRange is a calendar-date interval. Start is the first occupied date,
// End is checkout-exclusive: the night of End is not occupied. Times of day
// are discarded on construction.
type DateRange struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (DateRange, error) {
	s := dateOf(start)
	e := dateOf(end)
	if !s.Before(e) {
		return DateRange{}, ErrInvalidInterval
	}
	return DateRange{start: s, end: e}, nil
}

// SingleDay builds the one-night interval [d, d+1). Experience slots and
// service windows occupy a single calendar date.
func SingleDay(d time.Time) DateRange {
	s := dateOf(d)
	return DateRange{start: s, end: s.AddDate(0, 0, 1)}
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) IsZero() bool {
	return r.start.IsZero() && r.end.IsZero()
}

// Nights is the number of occupied dates.
func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Dates enumerates every occupied date, checkout-exclusive.
func (r DateRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.start; d.Before(r.end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// ContainedIn reports whether the whole interval falls inside the closed
// date interval [rangeStart, rangeEnd].
func (r DateRange) ContainedIn(rangeStart, rangeEnd time.Time) bool {
	rs := dateOf(rangeStart)
	re := dateOf(rangeEnd)
	return !r.start.Before(rs) && !r.end.After(re)
}

func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

func (r DateRange) Contains(d time.Time) bool {
	day := dateOf(d)
	return !day.Before(r.start) && day.Before(r.end)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.start.Format("2006-01-02"), r.end.Format("2006-01-02"))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
