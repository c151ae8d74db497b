package find_available_locations

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/middleware"
	findAvailableLocations "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/find_available_locations"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не указан ID пользователя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInterval    = "некорректный интервал, начало должно быть раньше конца"
	msgInvalidData        = "некорректные параметры поиска"
	msgAgencyNotFound     = "учреждение не найдено"
	msgBookingNotFound    = "исключаемое бронирование видеосвязи не найдено"
)

type Handler struct {
	useCase FindAvailableLocationsUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailableLocationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/agencies/{agencyId}/available-locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	agencyID := mux.Vars(r)["agencyId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /agencies/{id}/available-locations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req FindAvailableLocationsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agencies/{id}/available-locations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, agencyID)
	if err != nil {
		h.logger.Warn("POST /agencies/{id}/available-locations - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidInterval)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findAvailableLocations.ErrInvalidInput):
			h.logger.Warn("POST /agencies/{id}/available-locations - Invalid data: agency_id=%s, error=%v", agencyID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, findAvailableLocations.ErrAgencyNotFound):
			h.logger.Warn("POST /agencies/{id}/available-locations - Agency not found: agency_id=%s", agencyID)
			handlers.RespondNotFound(w, msgAgencyNotFound)

		case errors.Is(err, findAvailableLocations.ErrBookingNotFound):
			h.logger.Warn("POST /agencies/{id}/available-locations - Booking to exclude not found: agency_id=%s", agencyID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /agencies/{id}/available-locations - Failed to find locations: agency_id=%s, error=%v",
				agencyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /agencies/{id}/available-locations - Search completed: agency_id=%s, intervals=%d",
		agencyID, len(result.Results))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
