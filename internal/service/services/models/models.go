package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// Request модели

// ServiceRequest данные для создания и обновления услуги
type ServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price" validate:"gte=0"`
	Duration    int     `json:"duration" validate:"gte=15"`
	IsActive    *bool   `json:"isActive,omitempty"` // по умолчанию true
}

// SetActiveRequest переключение видимости услуги
type SetActiveRequest struct {
	IsActive bool `json:"isActive"`
}

// Response модели

// ServiceResponse услуга владельца
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	BusinessID      uuid.UUID `json:"businessId"`
	BusinessName    string    `json:"businessName,omitempty"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	Duration        int       `json:"duration"`
	DurationDisplay string    `json:"durationDisplay"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse список услуг владельца
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует доменную модель в ответ
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		BusinessID:      s.BusinessID,
		BusinessName:    s.BusinessName,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		Duration:        s.Duration,
		DurationDisplay: domain.FormatDuration(s.EffectiveDuration()),
		IsActive:        s.IsActive,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(list))}
	for _, s := range list {
		resp.Services = append(resp.Services, FromDomainService(s))
	}
	return resp
}
