package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fullBooking() BookingOption {
	return BookingOption{
		Pre:  &Segment{RoomID: 1, Interval: MustInterval(tod("10:45"), tod("11:00"))},
		Main: Segment{RoomID: 2, Interval: MustInterval(tod("11:00"), tod("12:00"))},
		Post: &Segment{RoomID: 1, Interval: MustInterval(tod("12:10"), tod("12:30"))},
	}
}

func TestBookingOption_Segments(t *testing.T) {
	segments := fullBooking().Segments()

	if assert.Len(t, segments, 3) {
		assert.Equal(t, SegmentPre, segments[0].Kind)
		assert.Equal(t, SegmentMain, segments[1].Kind)
		assert.Equal(t, SegmentPost, segments[2].Kind)
	}

	mainOnly := BookingOption{Main: Segment{RoomID: 5, Interval: MustInterval(tod("09:00"), tod("10:00"))}}
	segments = mainOnly.Segments()
	if assert.Len(t, segments, 1) {
		assert.Equal(t, SegmentMain, segments[0].Kind)
		assert.Equal(t, int64(5), segments[0].RoomID)
	}
}

func TestBookingOption_Bounds(t *testing.T) {
	b := fullBooking()
	assert.Equal(t, tod("10:45"), b.EarliestStart())
	assert.Equal(t, tod("12:30"), b.LatestEnd())

	b.Pre = nil
	b.Post = nil
	assert.Equal(t, tod("11:00"), b.EarliestStart())
	assert.Equal(t, tod("12:00"), b.LatestEnd())
}

func TestBookingOption_RoomIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 2}, fullBooking().RoomIDs())
}

func TestBookingOption_Shift(t *testing.T) {
	original := fullBooking()

	shifted := original.Shift(-45 * time.Minute)

	assert.Equal(t, tod("10:00"), shifted.Pre.Interval.Start())
	assert.Equal(t, tod("10:15"), shifted.Main.Interval.Start())
	assert.Equal(t, tod("11:25"), shifted.Post.Interval.Start())

	// gaps between the segments are preserved
	assert.Equal(t, original.Main.Interval.Start().Sub(original.Pre.Interval.End()),
		shifted.Main.Interval.Start().Sub(shifted.Pre.Interval.End()))
	assert.Equal(t, original.Post.Interval.Start().Sub(original.Main.Interval.End()),
		shifted.Post.Interval.Start().Sub(shifted.Main.Interval.End()))

	// the original is untouched, including the optional segments
	assert.Equal(t, tod("10:45"), original.Pre.Interval.Start())
	assert.NotSame(t, original.Pre, shifted.Pre)
}

func TestBookingOption_Validate(t *testing.T) {
	assert.NoError(t, fullBooking().Validate())

	b := fullBooking()
	b.Post = &Segment{RoomID: 1}
	assert.ErrorIs(t, b.Validate(), ErrInvalidInterval)

	assert.ErrorIs(t, BookingOption{}.Validate(), ErrInvalidInterval)
}
