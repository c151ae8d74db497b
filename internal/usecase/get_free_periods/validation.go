package get_free_periods

import (
	"fmt"
	"strings"

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

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
