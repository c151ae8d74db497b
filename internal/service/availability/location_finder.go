package availability

import (
	"slices"
	"sort"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
)

// FindAvailableLocations returns, for every target interval, the rooms of pool that are free
// throughout it. Results follow the order of targets; rooms follow the order of pool.
//
// All bookings (across any number of rooms) are swept once:
//   - phase 1 replays the events up to each target's snapshot point (the first event strictly
//     after the target start, or the end of the sweep) and records the pool rooms with zero
//     occupancy at that point;
//   - phase 2 removes from each snapshot every room with a START event before the target end.
func FindAvailableLocations(
	targets []domain.Interval,
	pool []int64,
	bookings []domain.RoomBooking,
) []domain.AvailableLocations {
	pool = distinctRooms(pool)
	inPool := make(map[int64]struct{}, len(pool))
	for _, id := range pool {
		inPool[id] = struct{}{}
	}

	events := make([]event, 0, 2*len(bookings))
	for _, e := range buildEvents(bookings) {
		if _, ok := inPool[e.roomID]; ok {
			events = append(events, e)
		}
	}

	// Phase 1: snapshot points
	snapshotAt := make([]int, len(targets))
	for k, target := range targets {
		start := target.Start()
		snapshotAt[k] = sort.Search(len(events), func(i int) bool {
			return events[i].at.IsAfter(start)
		})
	}

	order := make([]int, len(targets))
	for k := range order {
		order[k] = k
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return snapshotAt[a] - snapshotAt[b]
	})

	occupancy := make(map[int64]int, len(pool))
	free := make([]map[int64]struct{}, len(targets))
	applied := 0
	for _, k := range order {
		for ; applied < snapshotAt[k]; applied++ {
			occupancy[events[applied].roomID] += events[applied].delta()
		}
		snapshot := make(map[int64]struct{}, len(pool))
		for _, id := range pool {
			if occupancy[id] == 0 {
				snapshot[id] = struct{}{}
			}
		}
		free[k] = snapshot
	}

	// Phase 2: rooms that become occupied while the target is still open
	result := make([]domain.AvailableLocations, len(targets))
	for k, target := range targets {
		end := target.End()
		for i := snapshotAt[k]; i < len(events) && events[i].at.IsBefore(end); i++ {
			if events[i].kind == startEvent {
				delete(free[k], events[i].roomID)
			}
		}

		rooms := make([]int64, 0, len(free[k]))
		for _, id := range pool {
			if _, ok := free[k][id]; ok {
				rooms = append(rooms, id)
			}
		}
		result[k] = domain.AvailableLocations{Interval: target, RoomIDs: rooms}
	}

	return result
}

func distinctRooms(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
