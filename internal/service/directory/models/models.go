package models

import (
	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// ServiceResponse активная услуга в публичном каталоге
type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	Price           float64   `json:"price"`
	Duration        int       `json:"duration"`
	DurationDisplay string    `json:"durationDisplay"`
}

// BusinessResponse бизнес в справочнике
type BusinessResponse struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Email       string            `json:"email"`
	Phone       string            `json:"phone"`
	Address     string            `json:"address"`
	TodayHours  string            `json:"todayHours"`
	Services    []ServiceResponse `json:"services"`
}

// DirectoryResponse список бизнесов
type DirectoryResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// CatalogResponse бизнес и его активные услуги
type CatalogResponse struct {
	Business BusinessResponse `json:"business"`
}

// FromDomainService конвертирует услугу в ответ
func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		Duration:        s.EffectiveDuration(),
		DurationDisplay: domain.FormatDuration(s.EffectiveDuration()),
	}
}

// FromDomainBusiness конвертирует бизнес с его услугами
func FromDomainBusiness(b *domain.Business, todayHours string, services []*domain.Service) BusinessResponse {
	resp := BusinessResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Email:       b.Email,
		Phone:       b.Phone,
		Address:     b.Address,
		TodayHours:  todayHours,
		Services:    make([]ServiceResponse, 0, len(services)),
	}
	for _, s := range services {
		resp.Services = append(resp.Services, FromDomainService(s))
	}
	return resp
}
