package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/domain"
)

const (
	msgUnauthorized = "Debes iniciar sesión para continuar"
	msgForbidden    = "No tienes permisos para acceder a esta página"
)

type contextKey int

const sessionKey contextKey = iota

// Auth проверяет Bearer токен, загружает профиль и кладет сессию в контекст запроса
func Auth(parser TokenParser, sessions SessionLoader, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			userID, email, err := parser.Parse(token)
			if err != nil {
				logger.Warn("Auth: invalid token: %v", err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			session, err := sessions.LoadSession(r.Context(), userID, email)
			if err != nil {
				logger.Error("Auth: failed to load session for user=%s: %v", userID, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}

// RequireAdmin пропускает только администраторов, остальным 403 с переходом в панель
func RequireAdmin(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := GetSession(r.Context())
			if session == nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			if !session.IsAdmin() {
				logger.Warn("RequireAdmin: user=%s is not admin, path=%s", session.UserID, r.URL.Path)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithSession кладет сессию в контекст
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSession возвращает сессию из контекста или nil
func GetSession(ctx context.Context) *domain.Session {
	session, _ := ctx.Value(sessionKey).(*domain.Session)
	return session
}

// GetUserID возвращает ID пользователя текущей сессии
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	session := GetSession(ctx)
	if session == nil {
		return uuid.Nil, false
	}
	return session.UserID, true
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
