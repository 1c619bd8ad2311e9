package get_booking_reminder

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/service/bookings/models"
)

type BookingService interface {
	Reminder(ctx context.Context, userID, bookingID uuid.UUID) (*models.ReminderResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
