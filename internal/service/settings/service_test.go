package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-VideoLinkBookingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/service/settings/models"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/ptr"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetByAgency(ctx context.Context, agencyID string) (*domain.SearchSettings, error) {
	args := m.Called(ctx, agencyID)
	s, _ := args.Get(0).(*domain.SearchSettings)
	return s, args.Error(1)
}

func (m *mockRepository) Upsert(ctx context.Context, s *domain.SearchSettings) (*domain.SearchSettings, error) {
	args := m.Called(ctx, s)
	if fn, ok := args.Get(0).(func(context.Context, *domain.SearchSettings) *domain.SearchSettings); ok {
		return fn(ctx, s), args.Error(1)
	}
	saved, _ := args.Get(0).(*domain.SearchSettings)
	return saved, args.Error(1)
}

var defaults = domain.SearchSettings{
	DayStart:        types.NewTimeOfDay(9, 0),
	DayEnd:          types.NewTimeOfDay(18, 0),
	StepMinutes:     15,
	MaxAlternatives: 3,
}

func newService(repo *mockRepository) *Service {
	return NewService(repo, defaults, logger.NewNop())
}

func stored(agencyID string) *domain.SearchSettings {
	return &domain.SearchSettings{
		ID:              5,
		AgencyID:        agencyID,
		DayStart:        types.NewTimeOfDay(8, 0),
		DayEnd:          types.NewTimeOfDay(16, 0),
		StepMinutes:     30,
		MaxAlternatives: 2,
		UpdatedAt:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestService_GetForAgency_Defaults(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetByAgency", mock.Anything, "MDI").Return(nil, settingsRepo.ErrSettingsNotFound)

	s, err := newService(repo).GetForAgency(context.Background(), "MDI")

	require.NoError(t, err)
	assert.Equal(t, "MDI", s.AgencyID)
	assert.False(t, s.IsStored())
	assert.Equal(t, 15, s.StepMinutes)
	assert.Empty(t, defaults.AgencyID, "defaults are copied")
}

func TestService_Get(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetByAgency", mock.Anything, "MDI").Return(stored("MDI"), nil)

	resp, err := newService(repo).Get(context.Background(), "MDI")

	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, types.NewTimeOfDay(8, 0), resp.DayStart)
	assert.Equal(t, 30, resp.StepMinutes)
	require.NotNil(t, resp.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestService_Get_Errors(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetByAgency", mock.Anything, "MDI").Return(nil, errors.New("db down"))
	svc := newService(repo)

	_, err := svc.Get(context.Background(), "MDI")
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Get(context.Background(), "TOOLONGID")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_CreatesFromDefaults(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetByAgency", mock.Anything, "MDI").Return(nil, settingsRepo.ErrSettingsNotFound)
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *domain.SearchSettings) bool {
		return s.AgencyID == "MDI" &&
			s.DayStart == types.NewTimeOfDay(9, 0) &&
			s.DayEnd == types.NewTimeOfDay(18, 0) &&
			s.StepMinutes == 10 &&
			s.MaxAlternatives == 3
	})).Return(func(_ context.Context, s *domain.SearchSettings) *domain.SearchSettings {
		saved := *s
		saved.ID = 1
		return &saved
	}, nil)

	resp, err := newService(repo).Update(context.Background(), &models.UpdateSettingsRequest{
		AgencyID:    "MDI",
		UserID:      42,
		StepMinutes: ptr.Ptr(10),
	})

	require.NoError(t, err)
	assert.False(t, resp.IsDefault)
	assert.Equal(t, 10, resp.StepMinutes)
	repo.AssertExpectations(t)
}

func TestService_Update_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateSettingsRequest
	}{
		{name: "nothing to update", req: models.UpdateSettingsRequest{}},
		{name: "end before start", req: models.UpdateSettingsRequest{DayEnd: ptr.Ptr(types.NewTimeOfDay(7, 0))}},
		{name: "step too small", req: models.UpdateSettingsRequest{StepMinutes: ptr.Ptr(1)}},
		{name: "step too large", req: models.UpdateSettingsRequest{StepMinutes: ptr.Ptr(500)}},
		{name: "step longer than day", req: models.UpdateSettingsRequest{
			DayStart:    ptr.Ptr(types.NewTimeOfDay(9, 0)),
			DayEnd:      ptr.Ptr(types.NewTimeOfDay(9, 30)),
			StepMinutes: ptr.Ptr(60),
		}},
		{name: "no alternatives", req: models.UpdateSettingsRequest{MaxAlternatives: ptr.Ptr(0)}},
		{name: "too many alternatives", req: models.UpdateSettingsRequest{MaxAlternatives: ptr.Ptr(21)}},
		{name: "time out of range", req: models.UpdateSettingsRequest{DayEnd: ptr.Ptr(types.TimeOfDay(25 * time.Hour))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepository{}
			repo.On("GetByAgency", mock.Anything, "MDI").Return(stored("MDI"), nil).Maybe()

			req := tt.req
			req.AgencyID = "MDI"
			_, err := newService(repo).Update(context.Background(), &req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		})
	}
}

func TestService_Update_RepositoryError(t *testing.T) {
	repo := &mockRepository{}
	repo.On("GetByAgency", mock.Anything, "MDI").Return(stored("MDI"), nil)
	repo.On("Upsert", mock.Anything, mock.Anything).Return(nil, errors.New("constraint violation"))

	_, err := newService(repo).Update(context.Background(), &models.UpdateSettingsRequest{
		AgencyID:        "MDI",
		MaxAlternatives: ptr.Ptr(5),
	})

	assert.ErrorIs(t, err, ErrInternal)
}
