package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) (*domain.Service, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BusinessRepository интерфейс репозитория бизнесов (проверка владельца)
type BusinessRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
