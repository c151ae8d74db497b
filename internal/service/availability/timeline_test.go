package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

func TestTimeline_NoBookings(t *testing.T) {
	timeline := NewTimeline(nil)

	assert.Equal(t, []domain.Interval{domain.MustInterval(types.StartOfDay, types.EndOfDay)}, timeline.FreePeriods())

	for start := tod("06:00"); start < tod("20:00"); start = start.Add(10 * time.Minute) {
		target := domain.MustInterval(start, start.Add(45*time.Minute))
		assert.True(t, timeline.IsFreeForInterval(target), target.String())
	}
	assert.True(t, timeline.IsFreeForInterval(domain.MustInterval(types.StartOfDay, types.EndOfDay)))
}

func TestTimeline_AdjacentBookingsCoalesce(t *testing.T) {
	timeline := NewTimeline([]domain.RoomBooking{
		roomBooking(1, "09:00", "10:00"),
		roomBooking(1, "10:00", "11:00"),
	})

	assert.Equal(t, []domain.Interval{
		domain.MustInterval(types.StartOfDay, tod("09:00")),
		domain.MustInterval(tod("11:00"), types.EndOfDay),
	}, timeline.FreePeriods())

	assert.False(t, timeline.IsFreeForInterval(interval("09:30", "10:30")))
	assert.False(t, timeline.IsFreeForInterval(interval("10:00", "10:15")))
	assert.False(t, timeline.IsFreeForInterval(interval("10:59", "11:30")))
	assert.True(t, timeline.IsFreeForInterval(interval("08:00", "09:00")), "touching the start is free")
	assert.True(t, timeline.IsFreeForInterval(interval("11:00", "12:00")), "touching the end is free")
}

func TestTimeline_FreePeriods(t *testing.T) {
	tests := []struct {
		name     string
		bookings []domain.RoomBooking
		want     []domain.Interval
	}{
		{
			name:     "single booking",
			bookings: []domain.RoomBooking{roomBooking(1, "11:10", "11:20")},
			want: []domain.Interval{
				domain.MustInterval(types.StartOfDay, tod("11:10")),
				domain.MustInterval(tod("11:20"), types.EndOfDay),
			},
		},
		{
			name: "overlapping bookings",
			bookings: []domain.RoomBooking{
				roomBooking(1, "10:00", "12:00"),
				roomBooking(1, "09:00", "11:00"),
			},
			want: []domain.Interval{
				domain.MustInterval(types.StartOfDay, tod("09:00")),
				domain.MustInterval(tod("12:00"), types.EndOfDay),
			},
		},
		{
			name: "nested bookings",
			bookings: []domain.RoomBooking{
				roomBooking(1, "09:00", "12:00"),
				roomBooking(1, "10:00", "11:00"),
			},
			want: []domain.Interval{
				domain.MustInterval(types.StartOfDay, tod("09:00")),
				domain.MustInterval(tod("12:00"), types.EndOfDay),
			},
		},
		{
			name: "gap between bookings",
			bookings: []domain.RoomBooking{
				roomBooking(1, "13:00", "14:00"),
				roomBooking(1, "09:00", "10:00"),
			},
			want: []domain.Interval{
				domain.MustInterval(types.StartOfDay, tod("09:00")),
				interval("10:00", "13:00"),
				domain.MustInterval(tod("14:00"), types.EndOfDay),
			},
		},
		{
			name:     "booking from start of day",
			bookings: []domain.RoomBooking{{RoomID: 1, Interval: domain.MustInterval(types.StartOfDay, tod("08:00"))}},
			want:     []domain.Interval{domain.MustInterval(tod("08:00"), types.EndOfDay)},
		},
		{
			name:     "whole day booked",
			bookings: []domain.RoomBooking{{RoomID: 1, Interval: domain.MustInterval(types.StartOfDay, types.EndOfDay)}},
			want:     []domain.Interval{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewTimeline(tt.bookings).FreePeriods())
		})
	}
}

func TestTimeline_IsFreeForInterval_BeforeFirstFreePeriod(t *testing.T) {
	timeline := NewTimeline([]domain.RoomBooking{
		{RoomID: 1, Interval: domain.MustInterval(types.StartOfDay, tod("08:00"))},
	})

	assert.False(t, timeline.IsFreeForInterval(interval("07:00", "07:30")))
	assert.False(t, timeline.IsFreeForInterval(interval("07:30", "08:30")))
	assert.True(t, timeline.IsFreeForInterval(interval("08:00", "08:30")))
}

func TestTimeline_MatchesPairwiseOverlap(t *testing.T) {
	bookings := []domain.RoomBooking{
		roomBooking(1, "09:00", "09:30"),
		roomBooking(1, "09:30", "10:15"),
		roomBooking(1, "11:00", "12:00"),
		roomBooking(1, "11:30", "13:00"),
		roomBooking(1, "15:05", "15:10"),
	}
	timeline := NewTimeline(bookings)

	for start := tod("08:00"); start < tod("16:00"); start = start.Add(5 * time.Minute) {
		for _, length := range []time.Duration{5 * time.Minute, 30 * time.Minute, 2 * time.Hour} {
			target := domain.MustInterval(start, start.Add(length))

			want := true
			for _, b := range bookings {
				if b.Interval.Overlaps(target) {
					want = false
				}
			}
			assert.Equal(t, want, timeline.IsFreeForInterval(target), target.String())
		}
	}
}

func TestTimelinesForRooms(t *testing.T) {
	timelines := timelinesForRooms([]int64{1, 3}, []domain.RoomBooking{
		roomBooking(1, "09:00", "10:00"),
		roomBooking(2, "09:00", "17:00"),
	})

	assert.Len(t, timelines, 2)
	assert.False(t, timelines[1].IsFreeForInterval(interval("09:30", "09:45")))
	assert.True(t, timelines[3].IsFreeForInterval(interval("09:30", "09:45")), "room without bookings is free")
	assert.NotContains(t, timelines, int64(2), "only requested rooms get a timeline")
}
