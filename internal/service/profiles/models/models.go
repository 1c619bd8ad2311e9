package models

import (
	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// UpdateProfileRequest изменение имени и телефона
type UpdateProfileRequest struct {
	FullName *string `json:"fullName,omitempty" validate:"omitempty,max=200"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// ProfileResponse профиль пользователя
type ProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName *string   `json:"fullName,omitempty"`
	Phone    *string   `json:"phone,omitempty"`
	IsAdmin  bool      `json:"isAdmin"`
}

// SessionResponse текущая сессия
type SessionResponse struct {
	UserID  uuid.UUID        `json:"userId"`
	Email   string           `json:"email"`
	Profile *ProfileResponse `json:"profile"`
}

// FromDomainProfile конвертирует профиль
func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:       p.ID,
		FullName: p.FullName,
		Phone:    p.Phone,
		IsAdmin:  p.IsAdmin,
	}
}

// FromDomainSession конвертирует сессию
func FromDomainSession(s *domain.Session) *SessionResponse {
	return &SessionResponse{
		UserID:  s.UserID,
		Email:   s.Email,
		Profile: FromDomainProfile(s.Profile),
	}
}
