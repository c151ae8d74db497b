package schedulingservice

import (
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

// ScheduledAppointment назначение в комнате из системы расписаний
type ScheduledAppointment struct {
	ID         int64            `json:"id"`
	LocationID int64            `json:"locationId"`
	Date       string           `json:"date"` // YYYY-MM-DD
	StartTime  types.TimeOfDay  `json:"startTime"`
	EndTime    *types.TimeOfDay `json:"endTime,omitempty"` // у части назначений время окончания не задано
}

// ToRoomBooking преобразует назначение в занятость комнаты.
// Возвращает false, если у назначения нет времени окончания или интервал некорректен.
func (a ScheduledAppointment) ToRoomBooking() (domain.RoomBooking, bool) {
	if a.EndTime == nil {
		return domain.RoomBooking{}, false
	}
	interval, err := domain.NewInterval(a.StartTime, *a.EndTime)
	if err != nil {
		return domain.RoomBooking{}, false
	}
	return domain.RoomBooking{RoomID: a.LocationID, Interval: interval}, true
}

// ToRoomBookings преобразует назначения в занятость комнат.
// Назначения из excluded и назначения без корректного интервала пропускаются, skipped - их количество.
func ToRoomBookings(appointments []ScheduledAppointment, excluded []int64) (bookings []domain.RoomBooking, skipped int) {
	excludedSet := make(map[int64]struct{}, len(excluded))
	for _, id := range excluded {
		excludedSet[id] = struct{}{}
	}

	bookings = make([]domain.RoomBooking, 0, len(appointments))
	for _, a := range appointments {
		if _, ok := excludedSet[a.ID]; ok {
			skipped++
			continue
		}
		booking, ok := a.ToRoomBooking()
		if !ok {
			skipped++
			continue
		}
		bookings = append(bookings, booking)
	}

	return bookings, skipped
}

// Location комната учреждения
type Location struct {
	ID          int64  `json:"locationId"`
	AgencyID    string `json:"agencyId"`
	Description string `json:"description"`
	Type        string `json:"locationType"`
}

// ErrorResponse модель ошибки от системы расписаний
type ErrorResponse struct {
	Status           int    `json:"status"`
	UserMessage      string `json:"userMessage"`
	DeveloperMessage string `json:"developerMessage"`
}
