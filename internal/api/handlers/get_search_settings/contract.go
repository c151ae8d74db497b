package get_search_settings

import (
	"context"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/service/settings/models"
)

type SettingsService interface {
	Get(ctx context.Context, agencyID string) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
