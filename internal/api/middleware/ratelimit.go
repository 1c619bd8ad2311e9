package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
)

const msgTooManyRequests = "Demasiadas solicitudes, inténtalo de nuevo en unos minutos"

// RateLimit ограничивает частоту запросов по IP клиента
// При ошибке лимитера failOpen пропускает запрос, иначе отвечает 500
func RateLimit(limiter Limiter, counter RejectionCounter, failOpen bool, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := routeTemplate(r)
			key := route + ":" + clientIP(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				if failOpen {
					logger.Warn("RateLimit: limiter unavailable, letting request through: %v", err)
					next.ServeHTTP(w, r)
					return
				}
				logger.Error("RateLimit: limiter unavailable: %v", err)
				handlers.RespondInternalError(w)
				return
			}

			if !allowed {
				if counter != nil {
					counter.IncRateLimitRejected(route)
				}
				logger.Warn("RateLimit: rejected key=%s", key)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP первый адрес из X-Forwarded-For или адрес соединения
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
