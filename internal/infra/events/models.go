package events

import "time"

// EventBookingCreated тип события о новой записи
const EventBookingCreated = "booking.created"

// BookingCreated полезная нагрузка события о новой записи
type BookingCreated struct {
	BookingID     string    `json:"bookingId"`
	BusinessID    string    `json:"businessId"`
	ServiceID     string    `json:"serviceId"`
	CustomerID    string    `json:"customerId"`
	CustomerEmail string    `json:"customerEmail"`
	BookingDate   string    `json:"bookingDate"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
