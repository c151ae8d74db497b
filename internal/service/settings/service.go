package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-VideoLinkBookingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/service/settings/models"
)

// Service сервис для работы с настройками поиска учреждений
type Service struct {
	settingsRepo SettingsRepository
	defaults     domain.SearchSettings
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек.
// defaults используются для учреждений без сохраненных настроек.
func NewService(
	settingsRepo SettingsRepository,
	defaults domain.SearchSettings,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		defaults:     defaults,
		logger:       logger,
	}
}

// GetForAgency получает настройки поиска учреждения в доменном виде.
// Если настройки не сохранены, возвращает значения по умолчанию (ID = 0).
func (s *Service) GetForAgency(ctx context.Context, agencyID string) (*domain.SearchSettings, error) {
	if err := validateAgencyID(agencyID); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetByAgency(ctx, agencyID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			defaults := s.defaults
			defaults.AgencyID = agencyID
			return &defaults, nil
		}
		s.logger.Error("GetForAgency: repository error for agency_id=%s: %v", agencyID, err)
		return nil, fmt.Errorf("%w: GetForAgency - repository error: %v", ErrInternal, err)
	}

	return settings, nil
}

// Get получает настройки поиска учреждения
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, agencyID string) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching search settings for agency_id=%s", agencyID)

	settings, err := s.GetForAgency(ctx, agencyID)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("Get: validation failed: %v", err)
		}
		return nil, err
	}

	s.logger.Info("Get: successfully fetched search settings for agency_id=%s (default=%t)",
		agencyID, !settings.IsStored())
	return models.FromDomainSettings(settings), nil
}

// Update обновляет настройки поиска учреждения (частичное обновление)
// Если настроек еще нет, они создаются на основе значений по умолчанию
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating search settings for agency_id=%s by user=%d", req.AgencyID, req.UserID)

	// 1. Проверяем, что есть что обновлять
	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for agency_id=%s", req.AgencyID)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	// 2. Получаем текущие настройки (или значения по умолчанию)
	current, err := s.GetForAgency(ctx, req.AgencyID)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("Update: validation failed: %v", err)
		}
		return nil, err
	}

	// 3. Применяем изменения и валидируем результат
	req.ApplyTo(current)
	if err := validateSettings(current); err != nil {
		s.logger.Warn("Update: validation failed for agency_id=%s: %v", req.AgencyID, err)
		return nil, err
	}

	// 4. Сохраняем
	saved, err := s.settingsRepo.Upsert(ctx, current)
	if err != nil {
		s.logger.Error("Update: repository error for agency_id=%s: %v", req.AgencyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated search settings id=%d for agency_id=%s", saved.ID, saved.AgencyID)
	return models.FromDomainSettings(saved), nil
}

// Вспомогательные функции

func validateAgencyID(agencyID string) error {
	agencyID = strings.TrimSpace(agencyID)
	if agencyID == "" {
		return fmt.Errorf("%w: agency id is required", ErrInvalidInput)
	}
	if len(agencyID) > domain.MaxAgencyIDLength {
		return fmt.Errorf("%w: agency id must be at most %d characters", ErrInvalidInput, domain.MaxAgencyIDLength)
	}
	return nil
}

func validateSettings(s *domain.SearchSettings) error {
	if err := s.DayStart.Validate(); err != nil {
		return fmt.Errorf("%w: dayStart: %v", ErrInvalidInput, err)
	}
	if err := s.DayEnd.Validate(); err != nil {
		return fmt.Errorf("%w: dayEnd: %v", ErrInvalidInput, err)
	}
	window, err := s.DayWindow()
	if err != nil {
		return fmt.Errorf("%w: dayStart must be before dayEnd", ErrInvalidInput)
	}
	if s.StepMinutes < domain.MinStepMinutes || s.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: stepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	if s.Step() > window.Duration() {
		return fmt.Errorf("%w: stepMinutes must not exceed the working day", ErrInvalidInput)
	}
	if s.MaxAlternatives < domain.MinMaxAlternatives || s.MaxAlternatives > domain.MaxMaxAlternatives {
		return fmt.Errorf("%w: maxAlternatives must be between %d and %d",
			ErrInvalidInput, domain.MinMaxAlternatives, domain.MaxMaxAlternatives)
	}
	return nil
}
