package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetDetailsByID(ctx context.Context, id uuid.UUID) (*domain.BookingDetails, error)
	ListDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) error
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
