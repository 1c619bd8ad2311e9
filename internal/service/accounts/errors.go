package accounts

import "errors"

var (
	// ErrEmailAlreadyRegistered возвращается при повторной регистрации email
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("accounts: internal error")
)
