package directory

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	ListAll(ctx context.Context) ([]*domain.Business, error)
	Search(ctx context.Context, term string) ([]*domain.Business, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListActiveByBusinesses(ctx context.Context, businessIDs []uuid.UUID) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
