package events

import "errors"

var (
	// ErrMarshalEvent возвращается, если событие не удалось сериализовать
	ErrMarshalEvent = errors.New("events: failed to marshal event")

	// ErrPublish возвращается при ошибке записи в Kafka
	ErrPublish = errors.New("events: failed to publish event")
)
