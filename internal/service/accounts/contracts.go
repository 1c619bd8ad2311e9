package accounts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// AccountRepository интерфейс репозитория учетных записей
type AccountRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	EnsureExists(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, fullName, phone *string) (*domain.Profile, error)
}

// TokenIssuer выпуск токенов сессии
type TokenIssuer interface {
	Issue(userID uuid.UUID, email string) (string, time.Time, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
