package find_booking_options

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	agencyID := strings.TrimSpace(req.AgencyID)
	if agencyID == "" {
		return fmt.Errorf("%w: agencyId is required", ErrInvalidInput)
	}
	if len(agencyID) > domain.MaxAgencyIDLength {
		return fmt.Errorf("%w: agencyId must be at most %d characters", ErrInvalidInput, domain.MaxAgencyIDLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ExcludeVideoLinkBookingID != nil && *req.ExcludeVideoLinkBookingID <= 0 {
		return fmt.Errorf("%w: videoLinkBookingIdToExclude must be positive", ErrInvalidInput)
	}

	for _, s := range req.Booking.Segments() {
		if s.RoomID <= 0 {
			return fmt.Errorf("%w: %s segment: locationId must be positive", ErrInvalidInput, s.Kind)
		}
	}

	if err := req.Booking.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом
func validateDate(requestDate time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	requestDay := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, now.Location())

	if requestDay.Before(today) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, requestDate.Format(domain.DateFormat))
	}

	return nil
}
