package middleware

import (
	"context"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
)

// TokenParser проверка токена сессии
type TokenParser interface {
	Parse(token string) (uuid.UUID, string, error)
}

// SessionLoader собирает сессию по пользователю из токена
type SessionLoader interface {
	LoadSession(ctx context.Context, userID uuid.UUID, email string) (*domain.Session, error)
}

// Limiter ограничитель частоты запросов
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RejectionCounter учет отклоненных лимитером запросов
type RejectionCounter interface {
	IncRateLimitRejected(route string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
