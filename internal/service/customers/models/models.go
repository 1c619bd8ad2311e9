package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// CustomerResponse клиент, записывавшийся в бизнесы владельца
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerListResponse список клиентов
type CustomerListResponse struct {
	Customers []CustomerResponse `json:"customers"`
}

// FromDomainCustomerList конвертирует список
func FromDomainCustomerList(list []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{Customers: make([]CustomerResponse, 0, len(list))}
	for _, c := range list {
		resp.Customers = append(resp.Customers, CustomerResponse{
			ID:        c.ID,
			Name:      c.Name,
			Email:     c.Email,
			Phone:     c.Phone,
			CreatedAt: c.CreatedAt,
		})
	}
	return resp
}
