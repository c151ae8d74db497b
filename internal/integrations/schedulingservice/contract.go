package schedulingservice

import (
	"context"
	"time"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsCollector собирает длительность вызовов внешнего сервиса
type MetricsCollector interface {
	ObserveIntegration(integration, operation string, err error, duration time.Duration)
}

// RoomsProvider источник списка комнат учреждения с видеосвязью
type RoomsProvider interface {
	GetVideoLinkRooms(ctx context.Context, agencyID string) ([]Location, error)
}

// Cache хранилище сериализованных значений с TTL
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
