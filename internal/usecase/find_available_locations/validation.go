package find_available_locations

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

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.Targets) == 0 {
		return fmt.Errorf("%w: at least one interval is required", ErrInvalidInput)
	}
	if len(req.Targets) > MaxTargets {
		return fmt.Errorf("%w: at most %d intervals are allowed", ErrInvalidInput, MaxTargets)
	}
	for i, target := range req.Targets {
		if err := target.Validate(); err != nil {
			return fmt.Errorf("%w: interval %d: %v", ErrInvalidInput, i, err)
		}
	}

	for _, id := range req.RoomIDs {
		if id <= 0 {
			return fmt.Errorf("%w: locationId must be positive", ErrInvalidInput)
		}
	}

	if req.ExcludeVideoLinkBookingID != nil && *req.ExcludeVideoLinkBookingID <= 0 {
		return fmt.Errorf("%w: videoLinkBookingIdToExclude must be positive", ErrInvalidInput)
	}

	return nil
}
