package availability

import (
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

func tod(s string) types.TimeOfDay {
	return types.MustParseTimeOfDay(s)
}

func interval(start, end string) domain.Interval {
	return domain.MustInterval(tod(start), tod(end))
}

func roomBooking(roomID int64, start, end string) domain.RoomBooking {
	return domain.RoomBooking{RoomID: roomID, Interval: interval(start, end)}
}

func segment(roomID int64, start, end string) domain.Segment {
	return domain.Segment{RoomID: roomID, Interval: interval(start, end)}
}

func segmentPtr(roomID int64, start, end string) *domain.Segment {
	s := segment(roomID, start, end)
	return &s
}

func mainStarts(options []domain.BookingOption) []string {
	starts := make([]string, len(options))
	for i, o := range options {
		starts[i] = o.Main.Interval.Start().String()
	}
	return starts
}
