package get_free_periods

import "errors"

var (
	// ErrAgencyNotFound возвращается, когда учреждение неизвестно системе расписаний
	ErrAgencyNotFound = errors.New("agency not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
