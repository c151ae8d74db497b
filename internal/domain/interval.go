package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

// ErrInvalidInterval is returned when an interval's start is not strictly before its end
var ErrInvalidInterval = errors.New("domain: invalid interval, start must be before end")

// Interval is an immutable closed time range [start, end] within a single day.
// Two intervals that only touch at an endpoint do not overlap.
type Interval struct {
	start types.TimeOfDay
	end   types.TimeOfDay
}

// NewInterval creates an interval, failing with ErrInvalidInterval when start >= end
func NewInterval(start, end types.TimeOfDay) (Interval, error) {
	if !start.IsBefore(end) {
		return Interval{}, fmt.Errorf("%w: %s-%s", ErrInvalidInterval, start, end)
	}
	return Interval{start: start, end: end}, nil
}

// MustInterval is like NewInterval but panics on error. Intended for tests and constants.
func MustInterval(start, end types.TimeOfDay) Interval {
	i, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Interval) Start() types.TimeOfDay {
	return i.start
}

func (i Interval) End() types.TimeOfDay {
	return i.end
}

func (i Interval) Duration() time.Duration {
	return i.end.Sub(i.start)
}

// IsZero reports whether i is the zero value (never produced by NewInterval)
func (i Interval) IsZero() bool {
	return i.start == 0 && i.end == 0
}

// Validate re-checks the invariant, useful for values that crossed a package boundary as zero values
func (i Interval) Validate() error {
	if !i.start.IsBefore(i.end) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidInterval, i.start, i.end)
	}
	return nil
}

// Shift returns a new interval with both endpoints moved by d
func (i Interval) Shift(d time.Duration) Interval {
	return Interval{start: i.start.Add(d), end: i.end.Add(d)}
}

// Overlaps reports whether the intervals share more than an endpoint
func (i Interval) Overlaps(o Interval) bool {
	return i.start.IsBefore(o.end) && o.start.IsBefore(i.end)
}

// Contains reports whether o lies entirely inside i
func (i Interval) Contains(o Interval) bool {
	return !o.start.IsBefore(i.start) && !o.end.IsAfter(i.end)
}

func (i Interval) String() string {
	return i.start.String() + "-" + i.end.String()
}
