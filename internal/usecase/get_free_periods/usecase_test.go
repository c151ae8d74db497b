package get_free_periods

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/integrations/schedulingservice"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

type mockScheduling struct{ mock.Mock }

func (m *mockScheduling) GetScheduledAppointments(ctx context.Context, agencyID string, date time.Time, roomID int64) ([]schedulingservice.ScheduledAppointment, error) {
	args := m.Called(ctx, agencyID, date, roomID)
	a, _ := args.Get(0).([]schedulingservice.ScheduledAppointment)
	return a, args.Error(1)
}

var hearing = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func tod(s string) types.TimeOfDay {
	return types.MustParseTimeOfDay(s)
}

func appointment(start, end string) schedulingservice.ScheduledAppointment {
	e := tod(end)
	return schedulingservice.ScheduledAppointment{LocationID: 5, StartTime: tod(start), EndTime: &e}
}

func TestUseCase_Execute(t *testing.T) {
	client := &mockScheduling{}
	uc := NewUseCase(client, logger.NewNop())

	client.On("GetScheduledAppointments", mock.Anything, "MDI", hearing, int64(5)).
		Return([]schedulingservice.ScheduledAppointment{
			appointment("10:00", "11:00"),
			appointment("11:00", "11:30"),
			appointment("14:00", "15:00"),
			{LocationID: 5, StartTime: tod("16:00")},
		}, nil)

	resp, err := uc.Execute(context.Background(), &Request{AgencyID: "MDI", RoomID: 5, Date: hearing})

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.RoomID)
	assert.Equal(t, []domain.Interval{
		domain.MustInterval(types.StartOfDay, tod("10:00")),
		domain.MustInterval(tod("11:30"), tod("14:00")),
		domain.MustInterval(tod("15:00"), types.EndOfDay),
	}, resp.FreePeriods)
}

func TestUseCase_Execute_EmptyRoom(t *testing.T) {
	client := &mockScheduling{}
	uc := NewUseCase(client, logger.NewNop())
	client.On("GetScheduledAppointments", mock.Anything, "MDI", hearing, int64(5)).Return(nil, nil)

	resp, err := uc.Execute(context.Background(), &Request{AgencyID: "MDI", RoomID: 5, Date: hearing})

	require.NoError(t, err)
	assert.Equal(t, []domain.Interval{domain.MustInterval(types.StartOfDay, types.EndOfDay)}, resp.FreePeriods)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		req       *Request
		clientErr error
		wantErr   error
	}{
		{name: "no agency", req: &Request{RoomID: 5, Date: hearing}, wantErr: ErrInvalidInput},
		{name: "bad room", req: &Request{AgencyID: "MDI", Date: hearing}, wantErr: ErrInvalidInput},
		{name: "no date", req: &Request{AgencyID: "MDI", RoomID: 5}, wantErr: ErrInvalidInput},
		{name: "agency unknown", req: &Request{AgencyID: "MDI", RoomID: 5, Date: hearing}, clientErr: schedulingservice.ErrAgencyNotFound, wantErr: ErrAgencyNotFound},
		{name: "scheduling down", req: &Request{AgencyID: "MDI", RoomID: 5, Date: hearing}, clientErr: schedulingservice.ErrInternal, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &mockScheduling{}
			uc := NewUseCase(client, logger.NewNop())
			client.On("GetScheduledAppointments", mock.Anything, "MDI", hearing, int64(5)).Return(nil, tt.clientErr).Maybe()

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
