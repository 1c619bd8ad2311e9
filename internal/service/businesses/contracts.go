package businesses

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	Create(ctx context.Context, b *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*domain.Business, error)
	Update(ctx context.Context, b *domain.Business) (*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
