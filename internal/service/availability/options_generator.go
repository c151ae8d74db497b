package availability

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

// OptionsGenerator produces whole-booking shifts within a working day, on a fixed step,
// nearest to a preferred time first. It holds no cursor: every call starts over.
type OptionsGenerator struct {
	window domain.Interval
	step   time.Duration
}

// NewOptionsGenerator creates a generator for the working day window
func NewOptionsGenerator(window domain.Interval, step time.Duration) (*OptionsGenerator, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidStep, step)
	}
	return &OptionsGenerator{window: window, step: step}, nil
}

// StartTimes returns window.start, window.start+step, ... while before window.end
func (g *OptionsGenerator) StartTimes() []types.TimeOfDay {
	times := make([]types.TimeOfDay, 0, int(g.window.Duration()/g.step)+1)
	for t := g.window.Start(); t.IsBefore(g.window.End()); t = t.Add(g.step) {
		times = append(times, t)
	}
	return times
}

// StartTimesByProximity returns StartTimes ordered by distance from preferred.
// Equidistant times keep chronological order, so the earlier one comes first.
func (g *OptionsGenerator) StartTimesByProximity(preferred types.TimeOfDay) []types.TimeOfDay {
	times := g.StartTimes()
	slices.SortStableFunc(times, func(a, b types.TimeOfDay) int {
		da, db := distance(a, preferred), distance(b, preferred)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})
	return times
}

// OptionsInPreferredOrder yields preferred shifted so that its earliest segment starts at each
// start time, nearest first. Options whose latest segment ends after the working day are skipped.
func (g *OptionsGenerator) OptionsInPreferredOrder(preferred domain.BookingOption) iter.Seq[domain.BookingOption] {
	return func(yield func(domain.BookingOption) bool) {
		origin := preferred.EarliestStart()
		for _, start := range g.StartTimesByProximity(origin) {
			option := preferred.Shift(start.Sub(origin))
			if option.LatestEnd().IsAfter(g.window.End()) {
				continue
			}
			if !yield(option) {
				return
			}
		}
	}
}

func distance(a, b types.TimeOfDay) time.Duration {
	if a > b {
		return a.Sub(b)
	}
	return b.Sub(a)
}
