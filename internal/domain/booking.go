package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// statusLabels подписи статусов для панели управления
var statusLabels = map[BookingStatus]string{
	StatusPending:   "Pendiente",
	StatusConfirmed: "Confirmada",
	StatusCancelled: "Cancelada",
	StatusCompleted: "Completada",
}

// allowedTransitions допустимые переходы статусов
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Booking represents a reservation of a service for a customer
type Booking struct {
	ID          uuid.UUID
	BusinessID  uuid.UUID
	ServiceID   uuid.UUID
	CustomerID  uuid.UUID
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BookingDetails бронирование вместе с данными клиента, услуги и бизнеса
type BookingDetails struct {
	Booking
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ServiceName   string
	ServicePrice  float64
	BusinessName  string
}

// BookingsFilter фильтр выборки бронирований
type BookingsFilter struct {
	BusinessIDs []uuid.UUID    // Обязательный параметр
	ServiceID   *uuid.UUID     // Фильтр по услуге (опционально)
	Date        *time.Time     // Конкретная дата (опционально)
	Status      *BookingStatus // Фильтр по статусу (опционально)
	ActiveOnly  bool           // Исключить отмененные
}

// ParseBookingStatus проверяет строку статуса
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	_, ok := statusLabels[status]
	return status, ok
}

// Label подпись статуса
func (s BookingStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return statusLabels[StatusPending]
}

// CanTransitionTo проверяет допустимость перехода
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Overlaps проверяет пересечение с интервалом [start, end)
// Граничащие интервалы не пересекаются
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}
