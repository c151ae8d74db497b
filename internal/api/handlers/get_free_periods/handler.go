package get_free_periods

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers"
	getFreePeriods "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/get_free_periods"
)

const (
	msgInvalidRoomID  = "некорректный ID комнаты"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams  = "некорректные параметры запроса"
	msgAgencyNotFound = "учреждение не найдено"
)

type Handler struct {
	useCase GetFreePeriodsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreePeriodsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/agencies/{agencyId}/rooms/{roomId}/free-periods?date=YYYY-MM-DD
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	agencyID := vars["agencyId"]

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /agencies/{id}/rooms/{id}/free-periods - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	date, err := handlers.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /agencies/{id}/rooms/{id}/free-periods - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getFreePeriods.Request{
		AgencyID: agencyID,
		RoomID:   roomID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreePeriods.ErrInvalidInput):
			h.logger.Warn("GET /agencies/{id}/rooms/{id}/free-periods - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getFreePeriods.ErrAgencyNotFound):
			h.logger.Warn("GET /agencies/{id}/rooms/{id}/free-periods - Agency not found: agency_id=%s", agencyID)
			handlers.RespondNotFound(w, msgAgencyNotFound)

		default:
			h.logger.Error("GET /agencies/{id}/rooms/{id}/free-periods - Failed to get free periods: agency_id=%s, room_id=%d, error=%v",
				agencyID, roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
