package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/Andrez18/lummoo-core/internal/api/middleware"
	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/internal/service/bookings"
	"github.com/Andrez18/lummoo-core/internal/service/bookings/models"
	"github.com/Andrez18/lummoo-core/pkg/logger"
)

type stubBookings struct{ err error }

func (s stubBookings) UpdateStatus(_ context.Context, _, bookingID uuid.UUID, status string) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{ID: bookingID, Status: status}, nil
}

func patch(svc BookingService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/status", NewHandler(svc, logger.NewNop()).Handle)

	req := httptest.NewRequest(http.MethodPatch, "/bookings/"+uuid.NewString()+"/status", strings.NewReader(body))
	req = req.WithContext(middleware.WithSession(req.Context(), &domain.Session{UserID: uuid.New()}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"confirmed", nil, http.StatusOK},
		{"unknown status", bookings.ErrInvalidStatus, http.StatusBadRequest},
		{"transition not allowed", fmt.Errorf("%w: cancelled -> confirmed", bookings.ErrInvalidTransition), http.StatusConflict},
		{"not owned", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"storage failure", fmt.Errorf("%w: boom", bookings.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := patch(stubBookings{err: tt.err}, `{"status":"confirmed"}`)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
