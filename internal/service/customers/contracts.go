package customers

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	ListByBusinesses(ctx context.Context, businessIDs []uuid.UUID) ([]*domain.Customer, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*domain.Business, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
