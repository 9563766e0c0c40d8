package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrCalendarUnavailable возвращается, когда календарь не настроен или не авторизован
	ErrCalendarUnavailable = errors.New("get_available_slots: calendar not connected")

	// ErrInternal возвращается при прочих ошибках календаря
	ErrInternal = errors.New("get_available_slots: internal error")
)
