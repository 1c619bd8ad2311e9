package customers

import "errors"

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("customers: internal error")
