package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	createBooking "github.com/Andrez18/lummoo-core/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceID     string  `json:"serviceId"`
	BookingDate   string  `json:"bookingDate"` // "2025-03-10"
	StartTime     string  `json:"startTime"`   // "10:00"
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	BusinessID    uuid.UUID `json:"businessId"`
	ServiceID     uuid.UUID `json:"serviceId"`
	CustomerID    uuid.UUID `json:"customerId"`
	BookingDate   string    `json:"bookingDate"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Status        string    `json:"status"`
	ServiceName   string    `json:"serviceName"`
	ServicePrice  float64   `json:"servicePrice"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     string    `json:"createdAt"`
}

// CreateBookingResponse ответ с сообщением для клиента
type CreateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Некорректный serviceId превращается в uuid.Nil и отклоняется валидацией use case
func (r *CreateBookingRequest) ToUseCaseRequest(businessID uuid.UUID) *createBooking.Request {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		serviceID = uuid.Nil
	}

	return &createBooking.Request{
		BusinessID:    businessID,
		ServiceID:     serviceID,
		BookingDate:   r.BookingDate,
		StartTime:     r.StartTime,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) BookingResponse {
	return BookingResponse{
		ID:            resp.ID,
		BusinessID:    resp.BusinessID,
		ServiceID:     resp.ServiceID,
		CustomerID:    resp.CustomerID,
		BookingDate:   resp.BookingDate.Format(domain.DateFormat),
		StartTime:     resp.StartTime.String(),
		EndTime:       resp.EndTime.String(),
		Status:        resp.Status,
		ServiceName:   resp.ServiceName,
		ServicePrice:  resp.ServicePrice,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
