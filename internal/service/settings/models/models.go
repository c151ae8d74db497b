package models

import (
	"time"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек поиска учреждения
// Все поля, кроме AgencyID и UserID, опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	AgencyID        string           `json:"-"`
	UserID          int64            `json:"-"`
	DayStart        *types.TimeOfDay `json:"dayStart,omitempty"`
	DayEnd          *types.TimeOfDay `json:"dayEnd,omitempty"`
	StepMinutes     *int             `json:"stepMinutes,omitempty"`
	MaxAlternatives *int             `json:"maxAlternatives,omitempty"`
}

// ApplyTo переносит переданные поля в настройки
func (r *UpdateSettingsRequest) ApplyTo(s *domain.SearchSettings) {
	if r.DayStart != nil {
		s.DayStart = *r.DayStart
	}
	if r.DayEnd != nil {
		s.DayEnd = *r.DayEnd
	}
	if r.StepMinutes != nil {
		s.StepMinutes = *r.StepMinutes
	}
	if r.MaxAlternatives != nil {
		s.MaxAlternatives = *r.MaxAlternatives
	}
}

// IsEmpty возвращает true, если не передано ни одного поля для обновления
func (r *UpdateSettingsRequest) IsEmpty() bool {
	return r.DayStart == nil && r.DayEnd == nil && r.StepMinutes == nil && r.MaxAlternatives == nil
}

// Response модели

// SettingsResponse ответ с настройками поиска учреждения
type SettingsResponse struct {
	AgencyID        string          `json:"agencyId"`
	DayStart        types.TimeOfDay `json:"dayStart"`
	DayEnd          types.TimeOfDay `json:"dayEnd"`
	StepMinutes     int             `json:"stepMinutes"`
	MaxAlternatives int             `json:"maxAlternatives"`
	IsDefault       bool            `json:"isDefault"` // настройки не сохранены, используются значения по умолчанию
	UpdatedAt       *time.Time      `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.SearchSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		AgencyID:        s.AgencyID,
		DayStart:        s.DayStart,
		DayEnd:          s.DayEnd,
		StepMinutes:     s.StepMinutes,
		MaxAlternatives: s.MaxAlternatives,
		IsDefault:       !s.IsStored(),
	}
	if s.IsStored() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
