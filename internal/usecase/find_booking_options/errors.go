package find_booking_options

import "errors"

var (
	// ErrAgencyNotFound возвращается, когда учреждение неизвестно системе расписаний
	ErrAgencyNotFound = errors.New("agency not found")

	// ErrBookingNotFound возвращается, когда исключаемое бронирование видеосвязи не найдено
	ErrBookingNotFound = errors.New("video link booking to exclude not found")

	// ErrInvalidDate возвращается, если дата в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
