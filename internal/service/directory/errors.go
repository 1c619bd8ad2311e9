package directory

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("directory: internal error")
)
