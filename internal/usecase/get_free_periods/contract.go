package get_free_periods

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/integrations/schedulingservice"
)

// SchedulingServiceClient интерфейс клиента системы расписаний
type SchedulingServiceClient interface {
	GetScheduledAppointments(ctx context.Context, agencyID string, date time.Time, roomID int64) ([]schedulingservice.ScheduledAppointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
