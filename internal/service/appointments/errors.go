package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда встреча не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrTypeMismatch возвращается, когда тип встречи не совпадает с указанным при удалении
	ErrTypeMismatch = errors.New("appointment type does not match")

	// ErrInvalidView возвращается при неизвестном фильтре списка встреч
	ErrInvalidView = errors.New("invalid appointment view")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
