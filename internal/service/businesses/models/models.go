package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// Request модели

// BusinessRequest данные для создания и обновления бизнеса
type BusinessRequest struct {
	Name          string                `json:"name" validate:"required,min=2"`
	Description   *string               `json:"description,omitempty"`
	Email         string                `json:"email" validate:"required,email"`
	Phone         string                `json:"phone" validate:"required,min=10"`
	Address       string                `json:"address" validate:"required,min=5"`
	Timezone      string                `json:"timezone,omitempty" validate:"omitempty,timezone"`
	BusinessHours *domain.BusinessHours `json:"businessHours,omitempty"`
}

// Response модели

// DayHoursResponse расписание одного дня для отображения
type DayHoursResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Hours string `json:"hours"`
}

// BusinessResponse бизнес владельца
type BusinessResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Description   *string               `json:"description,omitempty"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone"`
	Address       string                `json:"address"`
	Timezone      string                `json:"timezone"`
	BusinessHours *domain.BusinessHours `json:"businessHours"`
	HoursDisplay  []DayHoursResponse    `json:"hoursDisplay"`
	BookingLink   string                `json:"bookingLink"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// BusinessListResponse список бизнесов владельца
type BusinessListResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
}

// FromDomainBusiness конвертирует доменную модель в ответ
func FromDomainBusiness(b *domain.Business) BusinessResponse {
	resp := BusinessResponse{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		Email:         b.Email,
		Phone:         b.Phone,
		Address:       b.Address,
		Timezone:      b.Timezone,
		BusinessHours: b.BusinessHours,
		BookingLink:   b.BookingLink(),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
	for _, day := range b.HoursDisplay() {
		resp.HoursDisplay = append(resp.HoursDisplay, DayHoursResponse{Key: day.Key, Label: day.Label, Hours: day.Hours})
	}
	return resp
}

// FromDomainBusinessList конвертирует список
func FromDomainBusinessList(list []*domain.Business) *BusinessListResponse {
	resp := &BusinessListResponse{Businesses: make([]BusinessResponse, 0, len(list))}
	for _, b := range list {
		resp.Businesses = append(resp.Businesses, FromDomainBusiness(b))
	}
	return resp
}
