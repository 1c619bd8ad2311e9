package get_business

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/internal/service/businesses"
	"github.com/Andrez18/lummoo-core/internal/service/businesses/models"
	"github.com/Andrez18/lummoo-core/pkg/logger"
)

type stubBusinesses struct {
	owner uuid.UUID
}

func (s stubBusinesses) GetOwn(_ context.Context, userID, businessID uuid.UUID) (*models.BusinessResponse, error) {
	if userID != s.owner {
		return nil, businesses.ErrBusinessNotFound
	}
	return &models.BusinessResponse{ID: businessID, Name: "Barbería Central"}, nil
}

func get(svc BusinessService, userID uuid.UUID, businessID string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodGet, "/businesses/"+businessID, nil)
	req = req.WithContext(middleware.WithSession(req.Context(), &domain.Session{UserID: userID}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Owner(t *testing.T) {
	owner := uuid.New()
	rec := get(stubBusinesses{owner: owner}, owner, uuid.NewString())

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.BusinessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Barbería Central", resp.Name)
}

func TestHandle_NotOwnedRedirectsToDashboard(t *testing.T) {
	rec := get(stubBusinesses{owner: uuid.New()}, uuid.New(), uuid.NewString())

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/dashboard", body.RedirectTo)
}

func TestHandle_NoSession(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}", NewHandler(stubBusinesses{}, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/businesses/"+uuid.NewString(), nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
