package availability

import "errors"

var (
	// ErrInvalidStep is returned when the step between candidate start times is not positive
	ErrInvalidStep = errors.New("availability: step must be positive")

	// ErrInvalidLimit is returned when the maximum number of alternatives is negative
	ErrInvalidLimit = errors.New("availability: max alternatives must not be negative")
)
