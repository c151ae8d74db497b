package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

// SegmentKind identifies a part of a video link booking
type SegmentKind string

const (
	SegmentPre  SegmentKind = "pre"
	SegmentMain SegmentKind = "main"
	SegmentPost SegmentKind = "post"
)

// RoomBooking is one already scheduled occupation of a room on the target day
type RoomBooking struct {
	RoomID   int64
	Interval Interval
}

// Segment is a room and a time interval for one part of a booking
type Segment struct {
	RoomID   int64
	Interval Interval
}

// PlacedSegment is a present segment together with its kind
type PlacedSegment struct {
	Kind SegmentKind
	Segment
}

// BookingOption is a complete video link booking: an optional pre hearing,
// the mandatory main hearing and an optional post hearing.
// It describes both the requested booking and every alternative offered for it.
type BookingOption struct {
	Pre  *Segment
	Main Segment
	Post *Segment
}

// Segments returns the present segments in chronological role order (pre, main, post).
// This is the only place that looks at the optional parts.
func (b BookingOption) Segments() []PlacedSegment {
	segments := make([]PlacedSegment, 0, 3)
	if b.Pre != nil {
		segments = append(segments, PlacedSegment{Kind: SegmentPre, Segment: *b.Pre})
	}
	segments = append(segments, PlacedSegment{Kind: SegmentMain, Segment: b.Main})
	if b.Post != nil {
		segments = append(segments, PlacedSegment{Kind: SegmentPost, Segment: *b.Post})
	}
	return segments
}

// Validate checks every present segment's interval
func (b BookingOption) Validate() error {
	for _, s := range b.Segments() {
		if err := s.Interval.Validate(); err != nil {
			return fmt.Errorf("%s segment: %w", s.Kind, err)
		}
	}
	return nil
}

// RoomIDs returns the distinct rooms referenced by the booking, in segment order
func (b BookingOption) RoomIDs() []int64 {
	seen := make(map[int64]struct{}, 3)
	ids := make([]int64, 0, 3)
	for _, s := range b.Segments() {
		if _, ok := seen[s.RoomID]; ok {
			continue
		}
		seen[s.RoomID] = struct{}{}
		ids = append(ids, s.RoomID)
	}
	return ids
}

// EarliestStart returns the start of the first present segment
func (b BookingOption) EarliestStart() types.TimeOfDay {
	segments := b.Segments()
	earliest := segments[0].Interval.Start()
	for _, s := range segments[1:] {
		if s.Interval.Start().IsBefore(earliest) {
			earliest = s.Interval.Start()
		}
	}
	return earliest
}

// LatestEnd returns the end of the last present segment
func (b BookingOption) LatestEnd() types.TimeOfDay {
	segments := b.Segments()
	latest := segments[0].Interval.End()
	for _, s := range segments[1:] {
		if s.Interval.End().IsAfter(latest) {
			latest = s.Interval.End()
		}
	}
	return latest
}

// Shift moves every present segment by d, keeping rooms and relative timing
func (b BookingOption) Shift(d time.Duration) BookingOption {
	shifted := BookingOption{
		Main: Segment{RoomID: b.Main.RoomID, Interval: b.Main.Interval.Shift(d)},
	}
	if b.Pre != nil {
		shifted.Pre = &Segment{RoomID: b.Pre.RoomID, Interval: b.Pre.Interval.Shift(d)}
	}
	if b.Post != nil {
		shifted.Post = &Segment{RoomID: b.Post.RoomID, Interval: b.Post.Interval.Shift(d)}
	}
	return shifted
}

// SearchOutcome is the result of a booking options search.
// Alternatives are only computed when the requested booking did not match.
type SearchOutcome struct {
	Matched      bool
	Alternatives []BookingOption
}

// AvailableLocations lists the rooms of a candidate pool that are free throughout Interval
type AvailableLocations struct {
	Interval Interval
	RoomIDs  []int64
}
