package profiles

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	EnsureExists(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, fullName, phone *string) (*domain.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
