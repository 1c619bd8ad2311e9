package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или относится к чужому бизнесу
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при неизвестном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("booking status transition is not allowed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
