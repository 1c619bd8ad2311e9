package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/pkg/types"
)

// Request модели

// UpdateStatusRequest запрос на изменение статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// CustomerInfo данные клиента в бронировании
type CustomerInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

// BookingResponse бронирование для панели управления
type BookingResponse struct {
	ID           uuid.UUID        `json:"id"`
	BusinessID   uuid.UUID        `json:"businessId"`
	BusinessName string           `json:"businessName"`
	ServiceID    uuid.UUID        `json:"serviceId"`
	ServiceName  string           `json:"serviceName"`
	ServicePrice float64          `json:"servicePrice"`
	Customer     CustomerInfo     `json:"customer"`
	BookingDate  string           `json:"bookingDate"`
	StartTime    types.TimeString `json:"startTime"`
	EndTime      types.TimeString `json:"endTime"`
	Status       string           `json:"status"`
	StatusLabel  string           `json:"statusLabel"`
	Notes        *string          `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ReminderResponse ссылка на напоминание в WhatsApp
type ReminderResponse struct {
	URL     string `json:"url"`
	Message string `json:"message"`
}

// FromDomainBookingDetails конвертирует доменную модель в ответ
func FromDomainBookingDetails(b *domain.BookingDetails) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		BusinessID:   b.BusinessID,
		BusinessName: b.BusinessName,
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		ServicePrice: b.ServicePrice,
		Customer: CustomerInfo{
			ID:    b.CustomerID,
			Name:  b.CustomerName,
			Email: b.CustomerEmail,
			Phone: b.CustomerPhone,
		},
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		StatusLabel: b.Status.Label(),
		Notes:       b.Notes,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingDetailsList конвертирует список
func FromDomainBookingDetailsList(list []*domain.BookingDetails) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(list))}
	for _, b := range list {
		resp.Bookings = append(resp.Bookings, FromDomainBookingDetails(b))
	}
	return resp
}
