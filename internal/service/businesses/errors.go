package businesses

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден или принадлежит другому пользователю
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("businesses: internal error")
)
