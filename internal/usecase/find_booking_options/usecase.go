package find_booking_options

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	videoLinkRepo "github.com/m04kA/SMC-VideoLinkBookingService/internal/infra/storage/videolink"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/integrations/schedulingservice"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/service/availability"
)

// UseCase use case поиска вариантов бронирования видеосвязи
type UseCase struct {
	settings         SettingsProvider
	videoLinkRepo    VideoLinkRepository
	schedulingClient SchedulingServiceClient
	metrics          MetricsCollector
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil, если метрики выключены.
func NewUseCase(
	settings SettingsProvider,
	videoLinkRepo VideoLinkRepository,
	schedulingClient SchedulingServiceClient,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		settings:         settings,
		videoLinkRepo:    videoLinkRepo,
		schedulingClient: schedulingClient,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case поиска вариантов бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindBookingOptions: user=%d, agency=%s, date=%s, main=%d@%s",
		req.UserID, req.AgencyID, req.Date.Format(domain.DateFormat), req.Booking.Main.RoomID, req.Booking.Main.Interval)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindBookingOptions: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("FindBookingOptions: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем настройки поиска учреждения
	settings, err := uc.settings.GetForAgency(ctx, req.AgencyID)
	if err != nil {
		uc.logger.Error("FindBookingOptions: failed to get search settings for agency=%s: %v", req.AgencyID, err)
		return nil, fmt.Errorf("%w: failed to get search settings: %v", ErrInternal, err)
	}

	finder, err := availability.NewBookingOptionsFinderFromSettings(settings)
	if err != nil {
		uc.logger.Error("FindBookingOptions: invalid search settings for agency=%s: %v", req.AgencyID, err)
		return nil, fmt.Errorf("%w: invalid search settings: %v", ErrInternal, err)
	}

	// 4. Параллельно загружаем назначения изменяемого бронирования и расписание комнат
	var (
		excluded     []int64
		appointments []schedulingservice.ScheduledAppointment
	)

	g, gctx := errgroup.WithContext(ctx)
	if req.ExcludeVideoLinkBookingID != nil {
		g.Go(func() error {
			ids, err := uc.videoLinkRepo.GetAppointmentIDs(gctx, *req.ExcludeVideoLinkBookingID)
			if err != nil {
				return err
			}
			excluded = ids
			return nil
		})
	}
	g.Go(func() error {
		loaded, err := uc.schedulingClient.GetScheduledAppointmentsForRooms(gctx, req.AgencyID, req.Date, req.Booking.RoomIDs())
		if err != nil {
			return err
		}
		appointments = loaded
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, uc.mapLoadError(req, err)
	}

	// 5. Преобразуем назначения в занятость комнат
	existing, skipped := schedulingservice.ToRoomBookings(appointments, excluded)
	uc.logger.Info("FindBookingOptions: schedule loaded, appointments=%d, excluded=%d, skipped=%d",
		len(appointments), len(excluded), skipped)

	// 6. Ищем варианты
	outcome, err := finder.Find(req.Booking, existing)
	if err != nil {
		uc.logger.Warn("FindBookingOptions: search failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSearch(outcome.Matched, len(outcome.Alternatives), len(existing))
	}

	uc.logger.Info("FindBookingOptions: agency=%s, date=%s, matched=%t, alternatives=%d",
		req.AgencyID, req.Date.Format(domain.DateFormat), outcome.Matched, len(outcome.Alternatives))

	return &Response{
		AgencyID:     req.AgencyID,
		Date:         req.Date,
		Matched:      outcome.Matched,
		Alternatives: outcome.Alternatives,
	}, nil
}

func (uc *UseCase) mapLoadError(req *Request, err error) error {
	switch {
	case errors.Is(err, videoLinkRepo.ErrBookingNotFound):
		uc.logger.Warn("FindBookingOptions: video link booking id=%d not found", *req.ExcludeVideoLinkBookingID)
		return ErrBookingNotFound
	case errors.Is(err, schedulingservice.ErrAgencyNotFound):
		uc.logger.Warn("FindBookingOptions: agency=%s not found", req.AgencyID)
		return ErrAgencyNotFound
	default:
		uc.logger.Error("FindBookingOptions: failed to load schedule: %v", err)
		return fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}
}
