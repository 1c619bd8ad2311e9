package create_booking

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена, неактивна или принадлежит другому бизнесу
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidDate возвращается при дате или времени начала в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrBusinessClosed возвращается, когда бизнес не работает в этот день
	ErrBusinessClosed = errors.New("create_booking: business is closed on this date")

	// ErrOutsideBusinessHours возвращается, когда слот выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("create_booking: slot is outside business hours")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с другой записью
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidTimeSlot возвращается, когда окончание услуги выходит за пределы дня
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
