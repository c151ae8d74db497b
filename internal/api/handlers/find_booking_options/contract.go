package find_booking_options

import (
	"context"

	findBookingOptions "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/find_booking_options"
)

type FindBookingOptionsUseCase interface {
	Execute(ctx context.Context, req *findBookingOptions.Request) (*findBookingOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
