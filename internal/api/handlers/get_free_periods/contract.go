package get_free_periods

import (
	"context"

	getFreePeriods "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/get_free_periods"
)

type GetFreePeriodsUseCase interface {
	Execute(ctx context.Context, req *getFreePeriods.Request) (*getFreePeriods.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
