package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeFormat is returned when a string is not HH:MM or HH:MM:SS
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange is returned when a value does not fit into a single day
	ErrTimeOutOfRange = errors.New("time of day out of range")
)

const day = 24 * time.Hour

// TimeOfDay is a wall-clock time within a single day, stored as the offset from midnight.
type TimeOfDay time.Duration

const (
	// StartOfDay is the earliest time of day (00:00)
	StartOfDay TimeOfDay = 0

	// EndOfDay is the latest representable time of day (23:59:59.999999999)
	EndOfDay = TimeOfDay(day - time.Nanosecond)
)

// NewTimeOfDay creates a time of day from hours and minutes
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// TimeOfDayFromTime extracts the wall-clock part of t in its own location
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay(time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond()))
}

// ParseTimeOfDay parses "HH:MM" or "HH:MM:SS"
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	limits := []int{23, 59, 59}
	units := []time.Duration{time.Hour, time.Minute, time.Second}

	var total time.Duration
	for i, p := range parts {
		if len(p) != 2 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || v > limits[i] {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
		}
		total += time.Duration(v) * units[i]
	}

	return TimeOfDay(total), nil
}

// MustParseTimeOfDay is like ParseTimeOfDay but panics on error. Intended for constants and tests.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Add returns t shifted by d. The result is not clamped to the day.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	return t + TimeOfDay(d)
}

// Sub returns the duration t-u
func (t TimeOfDay) Sub(u TimeOfDay) time.Duration {
	return time.Duration(t - u)
}

// IsBefore reports whether t is strictly before u
func (t TimeOfDay) IsBefore(u TimeOfDay) bool {
	return t < u
}

// IsAfter reports whether t is strictly after u
func (t TimeOfDay) IsAfter(u TimeOfDay) bool {
	return t > u
}

// Validate checks that t lies within a single day
func (t TimeOfDay) Validate() error {
	if t < StartOfDay || t > EndOfDay {
		return fmt.Errorf("%w: %s", ErrTimeOutOfRange, time.Duration(t))
	}
	return nil
}

// OnDate combines t with the calendar date of d in d's location
func (t TimeOfDay) OnDate(d time.Time) time.Time {
	y, m, dd := d.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, d.Location()).Add(time.Duration(t))
}

// String renders HH:MM, or HH:MM:SS when the value has seconds
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	if s == 0 {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// MarshalJSON implements json.Marshaler
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan implements sql.Scanner for Postgres TIME columns
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeOfDayFromTime(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidTimeFormat)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	// Postgres may return fractional seconds: 10:00:00.000000
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer
func (t TimeOfDay) Value() (driver.Value, error) {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d:%02d", d/time.Hour, (d%time.Hour)/time.Minute, (d%time.Minute)/time.Second), nil
}
