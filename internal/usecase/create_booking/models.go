package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	BusinessID    uuid.UUID // ID бизнеса (из пути)
	ServiceID     uuid.UUID
	BookingDate   string  `validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	StartTime     string  `validate:"required"`                     // HH:MM
	CustomerName  string  `validate:"required"`
	CustomerEmail string  `validate:"required,email"`
	CustomerPhone string  `validate:"required"`
	Notes         *string `validate:"omitempty,max=500"`
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	ServiceID   uuid.UUID
	CustomerID  uuid.UUID
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      string
	Notes       *string

	// Денормализованные данные
	ServiceName   string
	ServicePrice  float64
	CustomerName  string
	CustomerEmail string

	CreatedAt time.Time
}
