package schedulingservice

import "errors"

var (
	// ErrAgencyNotFound возвращается, если учреждение (тюрьма) неизвестно системе расписаний
	ErrAgencyNotFound = errors.New("schedulingservice client: agency not found")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут, сборка запроса)
	ErrInternal = errors.New("schedulingservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("schedulingservice client: invalid response")

	// ErrCacheMiss возвращается кэшем, если ключ отсутствует
	ErrCacheMiss = errors.New("schedulingservice cache: miss")
)
