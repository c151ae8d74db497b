package find_available_locations

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

// UseCase use case поиска свободных комнат видеосвязи на набор интервалов
type UseCase struct {
	roomsProvider    RoomsProvider
	videoLinkRepo    VideoLinkRepository
	schedulingClient SchedulingServiceClient
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomsProvider RoomsProvider,
	videoLinkRepo VideoLinkRepository,
	schedulingClient SchedulingServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomsProvider:    roomsProvider,
		videoLinkRepo:    videoLinkRepo,
		schedulingClient: schedulingClient,
		logger:           logger,
	}
}

// Execute выполняет use case поиска свободных комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableLocations: user=%d, agency=%s, date=%s, intervals=%d, rooms=%v",
		req.UserID, req.AgencyID, req.Date.Format(domain.DateFormat), len(req.Targets), req.RoomIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindAvailableLocations: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнаты учреждения с видеосвязью
	rooms, err := uc.roomsProvider.GetVideoLinkRooms(ctx, req.AgencyID)
	if err != nil {
		if errors.Is(err, schedulingservice.ErrAgencyNotFound) {
			uc.logger.Warn("FindAvailableLocations: agency=%s not found", req.AgencyID)
			return nil, ErrAgencyNotFound
		}
		uc.logger.Error("FindAvailableLocations: failed to get rooms for agency=%s: %v", req.AgencyID, err)
		return nil, fmt.Errorf("%w: failed to get rooms: %v", ErrInternal, err)
	}

	// 3. Формируем пул комнат (с учетом фильтра из запроса)
	pool, descriptions := uc.buildPool(req, rooms)

	response := &Response{
		AgencyID: req.AgencyID,
		Date:     req.Date,
		Rooms:    descriptions,
	}
	if len(pool) == 0 {
		uc.logger.Info("FindAvailableLocations: no video link rooms for agency=%s", req.AgencyID)
		response.Results = availability.FindAvailableLocations(req.Targets, nil, nil)
		return response, nil
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
		loaded, err := uc.schedulingClient.GetScheduledAppointmentsForRooms(gctx, req.AgencyID, req.Date, pool)
		if err != nil {
			return err
		}
		appointments = loaded
		return nil
	})

	if err := g.Wait(); err != nil {
		switch {
		case errors.Is(err, videoLinkRepo.ErrBookingNotFound):
			uc.logger.Warn("FindAvailableLocations: video link booking id=%d not found", *req.ExcludeVideoLinkBookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, schedulingservice.ErrAgencyNotFound):
			uc.logger.Warn("FindAvailableLocations: agency=%s not found", req.AgencyID)
			return nil, ErrAgencyNotFound
		default:
			uc.logger.Error("FindAvailableLocations: failed to load schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
		}
	}

	// 5. Преобразуем назначения в занятость комнат и ищем свободные комнаты
	existing, skipped := schedulingservice.ToRoomBookings(appointments, excluded)
	response.Results = availability.FindAvailableLocations(req.Targets, pool, existing)

	// 6. Диагностика: комнаты, где уже есть видеосвязь в этот день
	if booked, err := uc.videoLinkRepo.GetBookedRooms(ctx, req.AgencyID, req.Date); err != nil {
		uc.logger.Warn("FindAvailableLocations: failed to get booked rooms for agency=%s: %v", req.AgencyID, err)
	} else {
		uc.logger.Info("FindAvailableLocations: rooms with video link appointments on %s: %v",
			req.Date.Format(domain.DateFormat), booked)
	}

	uc.logger.Info("FindAvailableLocations: agency=%s, pool=%d, appointments=%d, skipped=%d, intervals=%d",
		req.AgencyID, len(pool), len(appointments), skipped, len(req.Targets))

	return response, nil
}

// buildPool возвращает комнаты для поиска в порядке ответа системы расписаний.
// Комнаты из фильтра запроса, которых нет среди комнат видеосвязи, игнорируются.
func (uc *UseCase) buildPool(req *Request, rooms []schedulingservice.Location) ([]int64, map[int64]Room) {
	requested := make(map[int64]struct{}, len(req.RoomIDs))
	for _, id := range req.RoomIDs {
		requested[id] = struct{}{}
	}

	pool := make([]int64, 0, len(rooms))
	descriptions := make(map[int64]Room, len(rooms))
	for _, room := range rooms {
		if len(requested) > 0 {
			if _, ok := requested[room.ID]; !ok {
				continue
			}
			delete(requested, room.ID)
		}
		if _, seen := descriptions[room.ID]; seen {
			continue
		}
		pool = append(pool, room.ID)
		descriptions[room.ID] = Room{ID: room.ID, Description: room.Description}
	}

	for id := range requested {
		uc.logger.Warn("FindAvailableLocations: location id=%d is not a video link room of agency=%s", id, req.AgencyID)
	}

	return pool, descriptions
}
