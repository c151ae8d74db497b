package settings

import (
	"context"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек поиска
type SettingsRepository interface {
	GetByAgency(ctx context.Context, agencyID string) (*domain.SearchSettings, error)
	Upsert(ctx context.Context, settings *domain.SearchSettings) (*domain.SearchSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
