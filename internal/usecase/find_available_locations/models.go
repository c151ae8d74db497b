package find_available_locations

import (
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
)

// MaxTargets максимальное число интервалов в одном запросе
const MaxTargets = 96

// Request модель запроса на поиск свободных комнат
type Request struct {
	UserID                    int64             // ID пользователя (для логирования)
	AgencyID                  string            // Код учреждения (тюрьмы)
	Date                      time.Time         // Дата (без времени)
	Targets                   []domain.Interval // Интересующие интервалы
	RoomIDs                   []int64           // Опционально: сузить выбор до этих комнат
	ExcludeVideoLinkBookingID *int64            // Изменяемое бронирование, его назначения не считаются занятостью
}

// Response модель ответа со свободными комнатами
type Response struct {
	AgencyID string
	Date     time.Time
	Results  []domain.AvailableLocations // В порядке Targets
	Rooms    map[int64]Room              // Описание комнат из результатов
}

// Room комната учреждения
type Room struct {
	ID          int64
	Description string
}
