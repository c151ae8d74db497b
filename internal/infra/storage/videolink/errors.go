package videolink

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование видеосвязи не найдено
	ErrBookingNotFound = errors.New("videolink.repository: video link booking not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("videolink.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("videolink.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("videolink.repository: failed to scan row")
)
