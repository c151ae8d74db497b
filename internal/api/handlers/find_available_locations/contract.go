package find_available_locations

import (
	"context"

	findAvailableLocations "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/find_available_locations"
)

type FindAvailableLocationsUseCase interface {
	Execute(ctx context.Context, req *findAvailableLocations.Request) (*findAvailableLocations.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
