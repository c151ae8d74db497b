package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/psqlbuilder"
)

const table = "agency_search_settings"

var columns = []string{
	"id",
	"agency_id",
	"day_start",
	"day_end",
	"step_minutes",
	"max_alternatives",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек поиска учреждений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек поиска
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByAgency получает настройки поиска учреждения
func (r *Repository) GetByAgency(ctx context.Context, agencyID string) (*domain.SearchSettings, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"agency_id": agencyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgency - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SearchSettings
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.AgencyID,
		&s.DayStart,
		&s.DayEnd,
		&s.StepMinutes,
		&s.MaxAlternatives,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByAgency - scan settings: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert создает или обновляет настройки поиска учреждения (одна запись на agency_id)
func (r *Repository) Upsert(ctx context.Context, s *domain.SearchSettings) (*domain.SearchSettings, error) {
	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"agency_id",
			"day_start",
			"day_end",
			"step_minutes",
			"max_alternatives",
		).
		Values(
			s.AgencyID,
			s.DayStart,
			s.DayEnd,
			s.StepMinutes,
			s.MaxAlternatives,
		).
		Suffix(`ON CONFLICT (agency_id) DO UPDATE SET
			day_start = EXCLUDED.day_start,
			day_end = EXCLUDED.day_end,
			step_minutes = EXCLUDED.step_minutes,
			max_alternatives = EXCLUDED.max_alternatives,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
