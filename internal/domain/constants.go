package domain

// Default search settings
const (
	DefaultDayStart        = "09:00"
	DefaultDayEnd          = "18:00"
	DefaultStepMinutes     = 15
	DefaultMaxAlternatives = 3
)

// Business validation constants
const (
	MinStepMinutes     = 5
	MaxStepMinutes     = 120
	MinMaxAlternatives = 1
	MaxMaxAlternatives = 20
	MaxAgencyIDLength  = 6
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
