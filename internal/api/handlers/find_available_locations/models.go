package find_available_locations

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	findAvailableLocations "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/find_available_locations"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidInterval = errors.New("invalid interval")
)

// FindAvailableLocationsRequest HTTP request model
type FindAvailableLocationsRequest struct {
	Date                        string              `json:"date"` // "2026-03-14"
	Intervals                   []handlers.Interval `json:"intervals"`
	LocationIDs                 []int64             `json:"locationIds,omitempty"`
	VideoLinkBookingIDToExclude *int64              `json:"videoLinkBookingIdToExclude,omitempty"`
}

// Location HTTP модель комнаты
type Location struct {
	LocationID  int64  `json:"locationId"`
	Description string `json:"description"`
}

// AvailableLocations свободные комнаты на интервал
type AvailableLocations struct {
	Interval  handlers.Interval `json:"interval"`
	Locations []Location        `json:"locations"`
}

// FindAvailableLocationsResponse HTTP response model
type FindAvailableLocationsResponse struct {
	AgencyID string               `json:"agencyId"`
	Date     string               `json:"date"`
	Results  []AvailableLocations `json:"results"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *FindAvailableLocationsRequest) ToUseCaseRequest(userID int64, agencyID string) (*findAvailableLocations.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	targets := make([]domain.Interval, len(r.Intervals))
	for i, interval := range r.Intervals {
		target, err := interval.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: intervals[%d]: %v", errInvalidInterval, i, err)
		}
		targets[i] = target
	}

	return &findAvailableLocations.Request{
		UserID:                    userID,
		AgencyID:                  agencyID,
		Date:                      date,
		Targets:                   targets,
		RoomIDs:                   r.LocationIDs,
		ExcludeVideoLinkBookingID: r.VideoLinkBookingIDToExclude,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findAvailableLocations.Response) *FindAvailableLocationsResponse {
	results := make([]AvailableLocations, len(resp.Results))
	for i, result := range resp.Results {
		locations := make([]Location, len(result.RoomIDs))
		for j, roomID := range result.RoomIDs {
			locations[j] = Location{LocationID: roomID, Description: resp.Rooms[roomID].Description}
		}
		results[i] = AvailableLocations{
			Interval:  handlers.FromDomainInterval(result.Interval),
			Locations: locations,
		}
	}

	return &FindAvailableLocationsResponse{
		AgencyID: resp.AgencyID,
		Date:     resp.Date.Format(domain.DateFormat),
		Results:  results,
	}
}
