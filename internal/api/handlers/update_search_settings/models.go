package update_search_settings

import (
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/service/settings/models"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

// UpdateSearchSettingsRequest HTTP request model (частичное обновление)
type UpdateSearchSettingsRequest struct {
	DayStart        *types.TimeOfDay `json:"dayStart,omitempty"`
	DayEnd          *types.TimeOfDay `json:"dayEnd,omitempty"`
	StepMinutes     *int             `json:"stepMinutes,omitempty"`
	MaxAlternatives *int             `json:"maxAlternatives,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateSearchSettingsRequest) ToServiceRequest(agencyID string, userID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		AgencyID:        agencyID,
		UserID:          userID,
		DayStart:        r.DayStart,
		DayEnd:          r.DayEnd,
		StepMinutes:     r.StepMinutes,
		MaxAlternatives: r.MaxAlternatives,
	}
}
