package availability

import (
	"slices"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

type eventKind int

const (
	startEvent eventKind = iota
	endEvent
)

// event is one endpoint of a room booking on the sweep line
type event struct {
	at     types.TimeOfDay
	kind   eventKind
	roomID int64
}

// buildEvents expands every booking into a START and an END event, ordered by time
func buildEvents(bookings []domain.RoomBooking) []event {
	events := make([]event, 0, 2*len(bookings))
	for _, b := range bookings {
		events = append(events,
			event{at: b.Interval.Start(), kind: startEvent, roomID: b.RoomID},
			event{at: b.Interval.End(), kind: endEvent, roomID: b.RoomID},
		)
	}
	slices.SortStableFunc(events, func(a, b event) int {
		switch {
		case a.at < b.at:
			return -1
		case a.at > b.at:
			return 1
		default:
			return 0
		}
	})
	return events
}

func (e event) delta() int {
	if e.kind == startEvent {
		return 1
	}
	return -1
}
