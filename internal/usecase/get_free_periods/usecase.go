package get_free_periods

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/integrations/schedulingservice"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/service/availability"
)

// UseCase use case получения свободных периодов комнаты за день
type UseCase struct {
	schedulingClient SchedulingServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedulingClient SchedulingServiceClient, logger Logger) *UseCase {
	return &UseCase{
		schedulingClient: schedulingClient,
		logger:           logger,
	}
}

// Execute выполняет use case получения свободных периодов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetFreePeriods: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем расписание комнаты
	appointments, err := uc.schedulingClient.GetScheduledAppointments(ctx, req.AgencyID, req.Date, req.RoomID)
	if err != nil {
		if errors.Is(err, schedulingservice.ErrAgencyNotFound) {
			uc.logger.Warn("GetFreePeriods: agency=%s not found", req.AgencyID)
			return nil, ErrAgencyNotFound
		}
		uc.logger.Error("GetFreePeriods: failed to get appointments for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Строим таймлайн комнаты
	bookings, skipped := schedulingservice.ToRoomBookings(appointments, nil)
	periods := availability.NewTimeline(bookings).FreePeriods()

	uc.logger.Info("GetFreePeriods: agency=%s, room=%d, date=%s, appointments=%d, skipped=%d, free=%d",
		req.AgencyID, req.RoomID, req.Date.Format(domain.DateFormat), len(appointments), skipped, len(periods))

	return &Response{
		AgencyID:    req.AgencyID,
		RoomID:      req.RoomID,
		Date:        req.Date,
		FreePeriods: periods,
	}, nil
}
