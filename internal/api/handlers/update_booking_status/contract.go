package update_booking_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/service/bookings/models"
)

type BookingService interface {
	UpdateStatus(ctx context.Context, userID, bookingID uuid.UUID, status string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
