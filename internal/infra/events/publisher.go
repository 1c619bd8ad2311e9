package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisher публикует события бронирований в Kafka
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger Logger
}

// NewKafkaPublisher создает публикатор; ключ сообщения - ID бизнеса,
// поэтому события одного бизнеса попадают в одну партицию
func NewKafkaPublisher(brokers []string, topic string, logger Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(writer, topic, logger)
}

func newKafkaPublisher(writer messageWriter, topic string, logger Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic, logger: logger}
}

// PublishBookingCreated отправляет событие booking.created
func (p *KafkaPublisher) PublishBookingCreated(ctx context.Context, event BookingCreated) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshalEvent, err)
	}

	msg := kafka.Message{
		Key:   []byte(event.BusinessID),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(uuid.NewString())},
			{Key: "event_type", Value: []byte(EventBookingCreated)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: topic=%s: %v", ErrPublish, p.topic, err)
	}

	p.logger.Info("Events: published %s booking=%s", EventBookingCreated, event.BookingID)
	return nil
}

// Close закрывает writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher используется, когда публикация событий выключена
type NopPublisher struct{}

// PublishBookingCreated ничего не делает
func (NopPublisher) PublishBookingCreated(context.Context, BookingCreated) error {
	return nil
}

// Close ничего не делает
func (NopPublisher) Close() error {
	return nil
}
