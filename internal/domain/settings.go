package domain

import (
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

// SearchSettings controls how alternatives are searched for an agency (prison).
// When an agency has no stored settings a value built from the configured defaults is used (ID = 0).
type SearchSettings struct {
	ID              int64
	AgencyID        string
	DayStart        types.TimeOfDay
	DayEnd          types.TimeOfDay
	StepMinutes     int
	MaxAlternatives int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Step returns the step between candidate start times
func (s *SearchSettings) Step() time.Duration {
	return time.Duration(s.StepMinutes) * time.Minute
}

// DayWindow returns the working day as an interval
func (s *SearchSettings) DayWindow() (Interval, error) {
	return NewInterval(s.DayStart, s.DayEnd)
}

// IsStored returns true if the settings were loaded from storage rather than built from defaults
func (s *SearchSettings) IsStored() bool {
	return s.ID > 0
}
