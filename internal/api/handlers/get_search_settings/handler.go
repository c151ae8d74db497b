package get_search_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/service/settings"
)

const msgInvalidAgencyID = "некорректный код учреждения"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/agencies/{agencyId}/search-settings
// Публичный endpoint - без авторизации.
// Если настройки не сохранены, возвращаются значения по умолчанию (isDefault=true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agencyID := mux.Vars(r)["agencyId"]

	result, err := h.service.Get(r.Context(), agencyID)
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("GET /agencies/{id}/search-settings - Invalid agency ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAgencyID)
			return
		}

		h.logger.Error("GET /agencies/{id}/search-settings - Failed to get settings: agency_id=%s, error=%v",
			agencyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /agencies/{id}/search-settings - Settings retrieved: agency_id=%s, default=%t",
		agencyID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
