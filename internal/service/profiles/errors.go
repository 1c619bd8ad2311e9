package profiles

import "errors"

var (
	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("profiles: internal error")
)
