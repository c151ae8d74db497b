package handlers

import (
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

// Interval HTTP модель интервала времени в пределах дня
type Interval struct {
	Start types.TimeOfDay `json:"start"` // "10:00"
	End   types.TimeOfDay `json:"end"`   // "11:30"
}

// ToDomain конвертирует интервал в доменную модель (start < end)
func (i Interval) ToDomain() (domain.Interval, error) {
	return domain.NewInterval(i.Start, i.End)
}

// FromDomainInterval конвертирует доменный интервал в HTTP модель
func FromDomainInterval(i domain.Interval) Interval {
	return Interval{Start: i.Start(), End: i.End()}
}

// FromDomainIntervals конвертирует список интервалов, сохраняя порядок
func FromDomainIntervals(intervals []domain.Interval) []Interval {
	result := make([]Interval, len(intervals))
	for i, interval := range intervals {
		result[i] = FromDomainInterval(interval)
	}
	return result
}

// ParseDate разбирает дату в формате YYYY-MM-DD
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}
