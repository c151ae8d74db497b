package find_booking_options

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VideoLinkBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VideoLinkBookingService/internal/domain"
	findBookingOptions "github.com/m04kA/SMC-VideoLinkBookingService/internal/usecase/find_booking_options"
)

var (
	errInvalidDate     = errors.New("invalid date")
	errInvalidInterval = errors.New("invalid interval")
	errMissingMain     = errors.New("main hearing is required")
)

// Segment HTTP модель части бронирования: комната и интервал
type Segment struct {
	LocationID int64             `json:"locationId"`
	Interval   handlers.Interval `json:"interval"`
}

// FindBookingOptionsRequest HTTP request model
type FindBookingOptionsRequest struct {
	AgencyID                    string   `json:"agencyId"`
	Date                        string   `json:"date"` // "2026-03-14"
	Pre                         *Segment `json:"pre,omitempty"`
	Main                        *Segment `json:"main"`
	Post                        *Segment `json:"post,omitempty"`
	VideoLinkBookingIDToExclude *int64   `json:"videoLinkBookingIdToExclude,omitempty"`
}

// BookingOption HTTP модель варианта бронирования
type BookingOption struct {
	Pre  *Segment `json:"pre,omitempty"`
	Main Segment  `json:"main"`
	Post *Segment `json:"post,omitempty"`
}

// FindBookingOptionsResponse HTTP response model
type FindBookingOptionsResponse struct {
	AgencyID     string          `json:"agencyId"`
	Date         string          `json:"date"`
	Matched      bool            `json:"matched"`
	Alternatives []BookingOption `json:"alternatives"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *FindBookingOptionsRequest) ToUseCaseRequest(userID int64) (*findBookingOptions.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	if r.Main == nil {
		return nil, errMissingMain
	}

	main, err := r.Main.toDomain()
	if err != nil {
		return nil, err
	}
	pre, err := optionalSegment(r.Pre)
	if err != nil {
		return nil, err
	}
	post, err := optionalSegment(r.Post)
	if err != nil {
		return nil, err
	}

	return &findBookingOptions.Request{
		UserID:                    userID,
		AgencyID:                  r.AgencyID,
		Date:                      date,
		Booking:                   domain.BookingOption{Pre: pre, Main: main, Post: post},
		ExcludeVideoLinkBookingID: r.VideoLinkBookingIDToExclude,
	}, nil
}

func (s *Segment) toDomain() (domain.Segment, error) {
	interval, err := s.Interval.ToDomain()
	if err != nil {
		return domain.Segment{}, fmt.Errorf("%w: %v", errInvalidInterval, err)
	}
	return domain.Segment{RoomID: s.LocationID, Interval: interval}, nil
}

func optionalSegment(s *Segment) (*domain.Segment, error) {
	if s == nil {
		return nil, nil
	}
	segment, err := s.toDomain()
	if err != nil {
		return nil, err
	}
	return &segment, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findBookingOptions.Response) *FindBookingOptionsResponse {
	alternatives := make([]BookingOption, len(resp.Alternatives))
	for i, option := range resp.Alternatives {
		alternatives[i] = fromDomainOption(option)
	}

	return &FindBookingOptionsResponse{
		AgencyID:     resp.AgencyID,
		Date:         resp.Date.Format(domain.DateFormat),
		Matched:      resp.Matched,
		Alternatives: alternatives,
	}
}

func fromDomainOption(option domain.BookingOption) BookingOption {
	result := BookingOption{Main: fromDomainSegment(option.Main)}
	if option.Pre != nil {
		pre := fromDomainSegment(*option.Pre)
		result.Pre = &pre
	}
	if option.Post != nil {
		post := fromDomainSegment(*option.Post)
		result.Post = &post
	}
	return result
}

func fromDomainSegment(s domain.Segment) Segment {
	return Segment{LocationID: s.RoomID, Interval: handlers.FromDomainInterval(s.Interval)}
}
