package videolink

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/psqlbuilder"
)

// Repository репозиторий бронирований видеосвязи.
// Хранит связь бронирования с назначениями, созданными для него в системе расписаний.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований видеосвязи
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAppointmentIDs возвращает ID назначений системы расписаний, созданных для бронирования.
// Используется, чтобы при изменении бронирования не считать его собственные назначения конфликтом.
func (r *Repository) GetAppointmentIDs(ctx context.Context, videoLinkBookingID int64) ([]int64, error) {
	// 1. Проверяем, что бронирование существует
	query, args, err := psqlbuilder.Select("id").
		From("video_link_bookings").
		Where(squirrel.Eq{"id": videoLinkBookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointmentIDs - build select booking query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointmentIDs - select booking: %v", ErrExecQuery, err)
	}

	// 2. Получаем назначения бронирования
	query, args, err = psqlbuilder.Select("appointment_id").
		From("video_link_appointments").
		Where(squirrel.Eq{"video_link_booking_id": videoLinkBookingID}).
		OrderBy("appointment_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAppointmentIDs - build select appointments query: %v", ErrBuildQuery, err)
	}

	return r.queryIDs(ctx, "GetAppointmentIDs", query, args)
}

// GetBookedRooms возвращает комнаты учреждения, в которых на дату уже есть назначения видеосвязи
func (r *Repository) GetBookedRooms(ctx context.Context, agencyID string, date time.Time) ([]int64, error) {
	query, args, err := psqlbuilder.Select("DISTINCT location_id").
		From("video_link_appointments").
		Where(squirrel.Eq{
			"agency_id":        agencyID,
			"appointment_date": date.Format(domain.DateFormat),
		}).
		OrderBy("location_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookedRooms - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryIDs(ctx, "GetBookedRooms", query, args)
}

func (r *Repository) queryIDs(ctx context.Context, operation, query string, args []interface{}) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, operation, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, operation, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, operation, err)
	}

	return ids, nil
}
