package get_free_periods

import (
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	getFreePeriods "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/get_free_periods"
)

// FreePeriodsResponse HTTP response model
type FreePeriodsResponse struct {
	AgencyID    string              `json:"agencyId"`
	LocationID  int64               `json:"locationId"`
	Date        string              `json:"date"`
	FreePeriods []handlers.Interval `json:"freePeriods"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreePeriods.Response) *FreePeriodsResponse {
	return &FreePeriodsResponse{
		AgencyID:    resp.AgencyID,
		LocationID:  resp.RoomID,
		Date:        resp.Date.Format(domain.DateFormat),
		FreePeriods: handlers.FromDomainIntervals(resp.FreePeriods),
	}
}
