package availability

import (
	"sort"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

// Timeline is the free/busy index of one room for one day.
// It holds the maximal free periods, ordered by start and never overlapping.
type Timeline struct {
	starts []types.TimeOfDay
	ends   []types.TimeOfDay
}

// NewTimeline sweeps the bookings of a single room and records its free periods.
// The sweep begins at StartOfDay and closes at EndOfDay, so a room without bookings
// has exactly one free period covering the whole day.
func NewTimeline(bookings []domain.RoomBooking) *Timeline {
	t := &Timeline{}
	events := buildEvents(bookings)

	occupancy := 0
	freeFrom := types.StartOfDay

	for i := 0; i < len(events); {
		at := events[i].at
		wasFree := occupancy == 0

		// events sharing a timestamp are one batch so that contiguous bookings coalesce
		for ; i < len(events) && events[i].at == at; i++ {
			occupancy += events[i].delta()
		}

		switch {
		case wasFree && occupancy > 0:
			t.addFreePeriod(freeFrom, at)
		case !wasFree && occupancy == 0:
			freeFrom = at
		}
	}

	if occupancy == 0 {
		t.addFreePeriod(freeFrom, types.EndOfDay)
	}

	return t
}

func (t *Timeline) addFreePeriod(from, to types.TimeOfDay) {
	if !from.IsBefore(to) {
		return
	}
	t.starts = append(t.starts, from)
	t.ends = append(t.ends, to)
}

// IsFreeForInterval reports whether the room is free throughout target.
// The free period with the greatest start <= target.start is the only candidate:
// if target runs past its end it intrudes into the following occupied span.
func (t *Timeline) IsFreeForInterval(target domain.Interval) bool {
	idx := sort.Search(len(t.starts), func(i int) bool {
		return t.starts[i].IsAfter(target.Start())
	}) - 1
	if idx < 0 {
		return false
	}
	return !target.End().IsAfter(t.ends[idx])
}

// FreePeriods returns the free periods in chronological order
func (t *Timeline) FreePeriods() []domain.Interval {
	periods := make([]domain.Interval, len(t.starts))
	for i := range t.starts {
		periods[i] = domain.MustInterval(t.starts[i], t.ends[i])
	}
	return periods
}

// timelinesForRooms builds a Timeline for each of roomIDs only, from a flat list of bookings
func timelinesForRooms(roomIDs []int64, bookings []domain.RoomBooking) map[int64]*Timeline {
	byRoom := make(map[int64][]domain.RoomBooking, len(roomIDs))
	for _, id := range roomIDs {
		byRoom[id] = nil
	}
	for _, b := range bookings {
		if _, ok := byRoom[b.RoomID]; ok {
			byRoom[b.RoomID] = append(byRoom[b.RoomID], b)
		}
	}

	timelines := make(map[int64]*Timeline, len(byRoom))
	for id, roomBookings := range byRoom {
		timelines[id] = NewTimeline(roomBookings)
	}
	return timelines
}
