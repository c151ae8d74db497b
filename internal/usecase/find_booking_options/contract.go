package find_booking_options

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/integrations/schedulingservice"
)

// SettingsProvider источник настроек поиска учреждения
type SettingsProvider interface {
	// GetForAgency возвращает настройки учреждения или значения по умолчанию
	GetForAgency(ctx context.Context, agencyID string) (*domain.SearchSettings, error)
}

// VideoLinkRepository интерфейс репозитория бронирований видеосвязи
type VideoLinkRepository interface {
	// GetAppointmentIDs возвращает назначения, созданные для бронирования видеосвязи
	GetAppointmentIDs(ctx context.Context, videoLinkBookingID int64) ([]int64, error)
}

// SchedulingServiceClient интерфейс клиента системы расписаний
type SchedulingServiceClient interface {
	GetScheduledAppointmentsForRooms(ctx context.Context, agencyID string, date time.Time, roomIDs []int64) ([]schedulingservice.ScheduledAppointment, error)
}

// MetricsCollector собирает статистику поиска
type MetricsCollector interface {
	ObserveSearch(matched bool, alternatives int, existingEvents int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
