package find_available_locations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	findAvailableLocations "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/find_available_locations"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/logger"
	"github.com/m04kA/SMC-VideoLinkBookingService/pkg/types"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *findAvailableLocations.Request) (*findAvailableLocations.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*findAvailableLocations.Response)
	return resp, args.Error(1)
}

const validBody = `{
	"date": "2026-03-14",
	"intervals": [{"start": "10:00", "end": "11:00"}, {"start": "14:00", "end": "15:00"}],
	"locationIds": [1, 2]
}`

func interval(start, end string) domain.Interval {
	return domain.MustInterval(types.MustParseTimeOfDay(start), types.MustParseTimeOfDay(end))
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/agencies/{agencyId}/available-locations", h.Handle).Methods(http.MethodPost)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/agencies/MDI/available-locations", strings.NewReader(body))
	r.Header.Set(middleware.UserIDHeader, "7")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, r)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, logger.NewNop())

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *findAvailableLocations.Request) bool {
		return req.AgencyID == "MDI" &&
			req.UserID == 7 &&
			len(req.Targets) == 2 &&
			req.Targets[1].String() == "14:00-15:00" &&
			assert.ObjectsAreEqual([]int64{1, 2}, req.RoomIDs) &&
			req.ExcludeVideoLinkBookingID == nil
	})).Return(&findAvailableLocations.Response{
		AgencyID: "MDI",
		Date:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Results: []domain.AvailableLocations{
			{Interval: interval("10:00", "11:00"), RoomIDs: []int64{2}},
			{Interval: interval("14:00", "15:00"), RoomIDs: []int64{}},
		},
		Rooms: map[int64]findAvailableLocations.Room{
			1: {ID: 1, Description: "VCC 1"},
			2: {ID: 2, Description: "VCC 2"},
		},
	}, nil)

	rec := serve(h, validBody)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp FindAvailableLocationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)
	assert.Equal(t, []Location{{LocationID: 2, Description: "VCC 2"}}, resp.Results[0].Locations)
	assert.Equal(t, "10:00", resp.Results[0].Interval.Start.String())
	assert.Empty(t, resp.Results[1].Locations)
	assert.Contains(t, rec.Body.String(), `"locations":[]`)
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "broken json", body: `[`, wantMsg: msgInvalidRequestBody},
		{name: "bad date", body: `{"date":"2026/03/14","intervals":[{"start":"10:00","end":"11:00"}]}`, wantMsg: msgInvalidDate},
		{name: "empty interval", body: `{"date":"2026-03-14","intervals":[{"start":"10:00","end":"10:00"}]}`, wantMsg: msgInvalidInterval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := NewHandler(uc, logger.NewNop())

			rec := serve(h, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

func TestHandler_Handle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid", err: findAvailableLocations.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "agency", err: findAvailableLocations.ErrAgencyNotFound, wantStatus: http.StatusNotFound},
		{name: "booking", err: findAvailableLocations.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: findAvailableLocations.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			h := NewHandler(uc, logger.NewNop())
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := serve(h, validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
