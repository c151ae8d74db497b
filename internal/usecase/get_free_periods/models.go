package get_free_periods

import (
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
)

// Request модель запроса свободных периодов комнаты
type Request struct {
	AgencyID string    // Код учреждения
	RoomID   int64     // ID комнаты
	Date     time.Time // Дата (без времени)
}

// Response модель ответа со свободными периодами
type Response struct {
	AgencyID    string
	RoomID      int64
	Date        time.Time
	FreePeriods []domain.Interval // В хронологическом порядке
}
