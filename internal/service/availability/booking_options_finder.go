package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
)

// BookingOptionsFinder checks whether a requested video link booking fits a day's schedule
// and, when it does not, looks for the nearest shifted versions of it that do.
type BookingOptionsFinder struct {
	generator       *OptionsGenerator
	maxAlternatives int
}

// NewBookingOptionsFinder creates a finder for one working day window.
// step is the distance between candidate start times, maxAlternatives caps the result.
func NewBookingOptionsFinder(window domain.Interval, step time.Duration, maxAlternatives int) (*BookingOptionsFinder, error) {
	if maxAlternatives < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, maxAlternatives)
	}
	generator, err := NewOptionsGenerator(window, step)
	if err != nil {
		return nil, err
	}
	return &BookingOptionsFinder{generator: generator, maxAlternatives: maxAlternatives}, nil
}

// NewBookingOptionsFinderFromSettings creates a finder from agency search settings
func NewBookingOptionsFinderFromSettings(settings *domain.SearchSettings) (*BookingOptionsFinder, error) {
	window, err := settings.DayWindow()
	if err != nil {
		return nil, err
	}
	return NewBookingOptionsFinder(window, settings.Step(), settings.MaxAlternatives)
}

// Find checks booking against existing, the day's bookings of any rooms.
// Existing bookings must already exclude the booking being amended.
//
// Segments sharing a room are checked independently against that room's timeline;
// the request's own segments are never added to it.
func (f *BookingOptionsFinder) Find(booking domain.BookingOption, existing []domain.RoomBooking) (domain.SearchOutcome, error) {
	if err := booking.Validate(); err != nil {
		return domain.SearchOutcome{}, err
	}

	timelines := timelinesForRooms(booking.RoomIDs(), existing)

	if isFree(booking, timelines) {
		return domain.SearchOutcome{Matched: true, Alternatives: []domain.BookingOption{}}, nil
	}

	alternatives := make([]domain.BookingOption, 0, f.maxAlternatives)
	if f.maxAlternatives == 0 {
		return domain.SearchOutcome{Alternatives: alternatives}, nil
	}

	for option := range f.generator.OptionsInPreferredOrder(booking) {
		if !isFree(option, timelines) {
			continue
		}
		alternatives = append(alternatives, option)
		if len(alternatives) == f.maxAlternatives {
			break
		}
	}

	return domain.SearchOutcome{Alternatives: alternatives}, nil
}

func isFree(option domain.BookingOption, timelines map[int64]*Timeline) bool {
	for _, s := range option.Segments() {
		if !timelines[s.RoomID].IsFreeForInterval(s.Interval) {
			return false
		}
	}
	return true
}
