package find_booking_options

import (
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
)

// Request модель запроса на поиск вариантов бронирования видеосвязи
type Request struct {
	UserID                    int64                // ID пользователя (для логирования, не влияет на результат)
	AgencyID                  string               // Код учреждения (тюрьмы)
	Date                      time.Time            // Дата слушания (без времени)
	Booking                   domain.BookingOption // Запрошенное бронирование: pre (опц.), main, post (опц.)
	ExcludeVideoLinkBookingID *int64               // Изменяемое бронирование, его назначения не считаются занятостью
}

// Response модель ответа поиска
type Response struct {
	AgencyID     string
	Date         time.Time
	Matched      bool                   // Запрошенное бронирование свободно
	Alternatives []domain.BookingOption // Ближайшие свободные варианты, если запрошенное занято
}
