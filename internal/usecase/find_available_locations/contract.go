package find_available_locations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/integrations/schedulingservice"
)

// RoomsProvider источник комнат учреждения с видеосвязью
type RoomsProvider interface {
	GetVideoLinkRooms(ctx context.Context, agencyID string) ([]schedulingservice.Location, error)
}

// VideoLinkRepository интерфейс репозитория бронирований видеосвязи
type VideoLinkRepository interface {
	GetAppointmentIDs(ctx context.Context, videoLinkBookingID int64) ([]int64, error)
	GetBookedRooms(ctx context.Context, agencyID string, date time.Time) ([]int64, error)
}

// SchedulingServiceClient интерфейс клиента системы расписаний
type SchedulingServiceClient interface {
	GetScheduledAppointmentsForRooms(ctx context.Context, agencyID string, date time.Time, roomIDs []int64) ([]schedulingservice.ScheduledAppointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
