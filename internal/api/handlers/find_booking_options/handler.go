package find_booking_options

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/middleware"
	findBookingOptions "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/find_booking_options"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не указан ID пользователя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInterval    = "некорректный интервал, начало должно быть раньше конца"
	msgMissingMain        = "не указано основное слушание (main)"
	msgInvalidData        = "некорректные данные бронирования"
	msgDateInPast         = "дата слушания в прошлом"
	msgAgencyNotFound     = "учреждение не найдено"
	msgBookingNotFound    = "исключаемое бронирование видеосвязи не найдено"
)

type Handler struct {
	useCase FindBookingOptionsUseCase
	logger  Logger
}

func NewHandler(useCase FindBookingOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/video-link-bookings/options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /video-link-bookings/options - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req FindBookingOptionsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /video-link-bookings/options - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и интервалов)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /video-link-bookings/options - Failed to parse request: %v", err)
		switch {
		case errors.Is(err, errInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, errMissingMain):
			handlers.RespondBadRequest(w, msgMissingMain)
		default:
			handlers.RespondBadRequest(w, msgInvalidInterval)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findBookingOptions.ErrInvalidInput):
			h.logger.Warn("POST /video-link-bookings/options - Invalid data: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, findBookingOptions.ErrInvalidDate):
			h.logger.Warn("POST /video-link-bookings/options - Date in past: user_id=%d, date=%s", userID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, findBookingOptions.ErrAgencyNotFound):
			h.logger.Warn("POST /video-link-bookings/options - Agency not found: agency_id=%s", req.AgencyID)
			handlers.RespondNotFound(w, msgAgencyNotFound)

		case errors.Is(err, findBookingOptions.ErrBookingNotFound):
			h.logger.Warn("POST /video-link-bookings/options - Booking to exclude not found: id=%v",
				*req.VideoLinkBookingIDToExclude)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /video-link-bookings/options - Failed to find options: user_id=%d, agency_id=%s, error=%v",
				userID, req.AgencyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /video-link-bookings/options - Search completed: agency_id=%s, matched=%t, alternatives=%d",
		result.AgencyID, result.Matched, len(result.Alternatives))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
