package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/pkg/authtoken"
	"github.com/Andrez18/lummoo-core/pkg/logger"
	"github.com/Andrez18/lummoo-core/pkg/ratelimit"
)

type staticSessions struct {
	isAdmin bool
	err     error
}

func (s staticSessions) LoadSession(_ context.Context, userID uuid.UUID, email string) (*domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Session{UserID: userID, Email: email, Profile: &domain.Profile{ID: userID, IsAdmin: s.isAdmin}}, nil
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newIssuer(t *testing.T) *authtoken.Issuer {
	t.Helper()
	issuer, err := authtoken.NewIssuer("test-secret", "lummoo", time.Hour)
	require.NoError(t, err)
	return issuer
}

func authorized(t *testing.T, issuer *authtoken.Issuer, userID uuid.UUID) *http.Request {
	t.Helper()
	token, _, err := issuer.Issue(userID, "owner@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAuth_MissingToken(t *testing.T) {
	h := Auth(newIssuer(t), staticSessions{}, logger.NewNop())(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/session", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_StoresSession(t *testing.T) {
	issuer := newIssuer(t)
	userID := uuid.New()

	var got *domain.Session
	h := Auth(issuer, staticSessions{}, logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSession(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authorized(t, issuer, userID))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "owner@example.com", got.Email)
}

func TestAuth_SessionLoadFailure(t *testing.T) {
	issuer := newIssuer(t)
	h := Auth(issuer, staticSessions{err: errors.New("db down")}, logger.NewNop())(http.HandlerFunc(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, authorized(t, issuer, uuid.New()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	issuer := newIssuer(t)
	log := logger.NewNop()

	t.Run("non admin gets forbidden with redirect", func(t *testing.T) {
		h := Auth(issuer, staticSessions{isAdmin: false}, log)(RequireAdmin(log)(http.HandlerFunc(okHandler)))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authorized(t, issuer, uuid.New()))

		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "/dashboard", body.RedirectTo)
		assert.NotEmpty(t, body.Error)
	})

	t.Run("admin passes", func(t *testing.T) {
		h := Auth(issuer, staticSessions{isAdmin: true}, log)(RequireAdmin(log)(http.HandlerFunc(okHandler)))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, authorized(t, issuer, uuid.New()))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RequireAdmin(log)(http.HandlerFunc(okHandler)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, errors.New("redis unavailable")
}

type countingRejections struct{ n int }

func (c *countingRejections) IncRateLimitRejected(string) { c.n++ }

func TestRateLimit(t *testing.T) {
	log := logger.NewNop()

	t.Run("rejects over limit per client", func(t *testing.T) {
		counter := &countingRejections{}
		h := RateLimit(ratelimit.NewMemoryLimiter(1, time.Minute), counter, true, log)(http.HandlerFunc(okHandler))

		first := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		h.ServeHTTP(first, req)
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		h.ServeHTTP(second, req)
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.Equal(t, 1, counter.n)

		other := httptest.NewRecorder()
		req2 := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		req2.RemoteAddr = "10.0.0.2:5000"
		h.ServeHTTP(other, req2)
		assert.Equal(t, http.StatusOK, other.Code)
	})

	t.Run("fail open", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RateLimit(failingLimiter{}, nil, true, log)(http.HandlerFunc(okHandler)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("fail closed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		RateLimit(failingLimiter{}, nil, false, log)(http.HandlerFunc(okHandler)).
			ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings", nil))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}
