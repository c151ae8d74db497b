package schedulingservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

type recordedCall struct {
	operation string
	failed    bool
}

type fakeMetrics struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (m *fakeMetrics) ObserveIntegration(integration, operation string, err error, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, recordedCall{operation: operation, failed: err != nil})
}

var testDate = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeMetrics) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	m := &fakeMetrics{}
	return NewClient(srv.URL, 2*time.Second, 2, logger.NewNop(), m), m
}

func TestClient_GetScheduledAppointments(t *testing.T) {
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schedules/MDI/locations/42/appointments", r.URL.Path)
		assert.Equal(t, "2026-03-14", r.URL.Query().Get("date"))
		_, _ = w.Write([]byte(`[
			{"id": 1, "locationId": 42, "date": "2026-03-14", "startTime": "09:00", "endTime": "10:00"},
			{"id": 2, "locationId": 42, "date": "2026-03-14", "startTime": "11:00"}
		]`))
	})

	appointments, err := client.GetScheduledAppointments(context.Background(), "MDI", testDate, 42)

	require.NoError(t, err)
	require.Len(t, appointments, 2)
	assert.Equal(t, types.NewTimeOfDay(9, 0), appointments[0].StartTime)
	require.NotNil(t, appointments[0].EndTime)
	assert.Equal(t, types.NewTimeOfDay(10, 0), *appointments[0].EndTime)
	assert.Nil(t, appointments[1].EndTime)
	assert.Equal(t, []recordedCall{{operation: "get_scheduled_appointments"}}, m.calls)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrAgencyNotFound},
		{name: "bad request", status: http.StatusBadRequest, body: `{"userMessage":"bad date"}`, wantErr: ErrInvalidResponse},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInvalidResponse},
		{name: "broken json", status: http.StatusOK, body: "[{", wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetVideoLinkRooms(context.Background(), "MDI")

			assert.ErrorIs(t, err, tt.wantErr)
			require.Len(t, m.calls, 1)
			assert.True(t, m.calls[0].failed)
		})
	}
}

func TestClient_BadRequestCarriesUserMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":400,"userMessage":"invalid date"}`))
	})

	_, err := client.GetScheduledAppointments(context.Background(), "MDI", testDate, 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, 1, logger.NewNop(), nil)

	_, err := client.GetVideoLinkRooms(context.Background(), "MDI")

	assert.ErrorIs(t, err, ErrInternal)
}

func TestClient_GetVideoLinkRooms(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agencies/MDI/locations", r.URL.Path)
		assert.Equal(t, "VIDE", r.URL.Query().Get("eventType"))
		_ = json.NewEncoder(w).Encode([]Location{
			{ID: 1, AgencyID: "MDI", Description: "VCC Room 1", Type: "VIDE"},
			{ID: 2, AgencyID: "MDI", Description: "VCC Room 2", Type: "VIDE"},
		})
	})

	rooms, err := client.GetVideoLinkRooms(context.Background(), "MDI")

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, int64(2), rooms[1].ID)
	assert.Equal(t, "VCC Room 2", rooms[1].Description)
}

func TestClient_GetScheduledAppointmentsForRooms(t *testing.T) {
	var inFlight, maxInFlight int32
	client, m := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		current := atomic.AddInt32(&inFlight, 1)
		defer atomic.AddInt32(&inFlight, -1)
		for {
			seen := atomic.LoadInt32(&maxInFlight)
			if current <= seen || atomic.CompareAndSwapInt32(&maxInFlight, seen, current) {
				break
			}
		}
		time.Sleep(10 * time.Millisecond)

		parts := strings.Split(r.URL.Path, "/")
		roomID := parts[len(parts)-2]
		fmt.Fprintf(w, `[{"id": %s0, "locationId": %s, "startTime": "09:00", "endTime": "09:30"}]`, roomID, roomID)
	})

	appointments, err := client.GetScheduledAppointmentsForRooms(context.Background(), "MDI", testDate, []int64{3, 1, 2})

	require.NoError(t, err)
	require.Len(t, appointments, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{
		appointments[0].LocationID, appointments[1].LocationID, appointments[2].LocationID,
	}, "results keep room order")
	assert.Equal(t, int64(30), appointments[0].ID)
	assert.LessOrEqual(t, atomic.LoadInt32(&maxInFlight), int32(2))
	assert.Len(t, m.calls, 3)
}

func TestClient_GetScheduledAppointmentsForRooms_Error(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/locations/2/") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.GetScheduledAppointmentsForRooms(context.Background(), "MDI", testDate, []int64{1, 2, 3})

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "room_id=2")
}

func TestClient_GetScheduledAppointmentsForRooms_NoRooms(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	appointments, err := client.GetScheduledAppointmentsForRooms(context.Background(), "MDI", testDate, nil)

	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestScheduledAppointment_ToRoomBooking(t *testing.T) {
	end := types.NewTimeOfDay(10, 0)
	before := types.NewTimeOfDay(8, 0)

	booking, ok := ScheduledAppointment{LocationID: 7, StartTime: types.NewTimeOfDay(9, 0), EndTime: &end}.ToRoomBooking()
	require.True(t, ok)
	assert.Equal(t, int64(7), booking.RoomID)
	assert.Equal(t, "09:00-10:00", booking.Interval.String())

	_, ok = ScheduledAppointment{LocationID: 7, StartTime: types.NewTimeOfDay(9, 0)}.ToRoomBooking()
	assert.False(t, ok, "no end time")

	_, ok = ScheduledAppointment{LocationID: 7, StartTime: types.NewTimeOfDay(9, 0), EndTime: &before}.ToRoomBooking()
	assert.False(t, ok, "end before start")
}

func TestToRoomBookings(t *testing.T) {
	end := func(h, m int) *types.TimeOfDay {
		v := types.NewTimeOfDay(h, m)
		return &v
	}
	appointments := []ScheduledAppointment{
		{ID: 1, LocationID: 10, StartTime: types.NewTimeOfDay(9, 0), EndTime: end(10, 0)},
		{ID: 2, LocationID: 10, StartTime: types.NewTimeOfDay(11, 0), EndTime: end(12, 0)},
		{ID: 3, LocationID: 11, StartTime: types.NewTimeOfDay(9, 0)},
		{ID: 4, LocationID: 11, StartTime: types.NewTimeOfDay(13, 0), EndTime: end(14, 0)},
	}

	bookings, skipped := ToRoomBookings(appointments, []int64{2, 99})

	assert.Equal(t, 2, skipped)
	require.Len(t, bookings, 2)
	assert.Equal(t, int64(10), bookings[0].RoomID)
	assert.Equal(t, "09:00-10:00", bookings[0].Interval.String())
	assert.Equal(t, int64(11), bookings[1].RoomID)
	assert.Equal(t, "13:00-14:00", bookings[1].Interval.String())

	bookings, skipped = ToRoomBookings(nil, nil)
	assert.Empty(t, bookings)
	assert.Zero(t, skipped)
}
