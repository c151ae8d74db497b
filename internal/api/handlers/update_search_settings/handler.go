package update_search_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не указан ID пользователя"
	msgInvalidData        = "некорректные настройки поиска"
)

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

// Handle PUT /api/v1/agencies/{agencyId}/search-settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agencyID := mux.Vars(r)["agencyId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /agencies/{id}/search-settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateSearchSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /agencies/{id}/search-settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(agencyID, userID))
	if err != nil {
		if errors.Is(err, settings.ErrInvalidInput) {
			h.logger.Warn("PUT /agencies/{id}/search-settings - Invalid data: agency_id=%s, error=%v", agencyID, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}

		h.logger.Error("PUT /agencies/{id}/search-settings - Failed to update settings: agency_id=%s, error=%v",
			agencyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /agencies/{id}/search-settings - Settings updated: agency_id=%s, user_id=%d", agencyID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
