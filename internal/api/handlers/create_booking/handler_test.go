package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/api/handlers"
	createBooking "github.com/Andrez18/lummoo-core/internal/usecase/create_booking"
	"github.com/Andrez18/lummoo-core/pkg/logger"
	"github.com/Andrez18/lummoo-core/pkg/types"
)

type stubUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(t *testing.T, uc CreateBookingUseCase, businessID string, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := mux.NewRouter()
	router.HandleFunc("/businesses/{businessId}/bookings", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/businesses/"+businessID+"/bookings", strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	businessID := uuid.New()
	serviceID := uuid.New()
	uc := &stubUseCase{resp: &createBooking.Response{
		ID:          uuid.New(),
		BusinessID:  businessID,
		ServiceID:   serviceID,
		BookingDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("10:30"),
		Status:      "pending",
		ServiceName: "Haircut",
	}}

	body := fmt.Sprintf(`{"serviceId":%q,"bookingDate":"2025-03-10","startTime":"10:00","customerName":"Ana","customerEmail":"ana@example.com","customerPhone":"3001234567"}`, serviceID)
	rec := serve(t, uc, businessID.String(), body)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, businessID, uc.got.BusinessID)
	assert.Equal(t, serviceID, uc.got.ServiceID)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "¡Reserva creada!", resp.Message)
	assert.Equal(t, "10:00", resp.Booking.StartTime)
	assert.Equal(t, "10:30", resp.Booking.EndTime)
	assert.Equal(t, "pending", resp.Booking.Status)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"missing fields", fmt.Errorf("%w: customerName", createBooking.ErrInvalidInput), http.StatusBadRequest, msgMissingFields},
		{"slot taken", createBooking.ErrSlotNotAvailable, http.StatusConflict, msgSlotNotAvailable},
		{"business not found", createBooking.ErrBusinessNotFound, http.StatusNotFound, msgBusinessNotFound},
		{"closed", createBooking.ErrBusinessClosed, http.StatusBadRequest, msgBusinessClosed},
		{"internal", fmt.Errorf("%w: boom", createBooking.ErrInternal), http.StatusInternalServerError, "error interno del servidor, inténtalo de nuevo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &stubUseCase{err: tt.err}, uuid.NewString(), `{"serviceId":"x"}`)

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.msg, body.Error)
		})
	}
}

func TestHandle_InvalidServiceIDReachesValidation(t *testing.T) {
	uc := &stubUseCase{err: createBooking.ErrInvalidInput}
	rec := serve(t, uc, uuid.NewString(), `{"serviceId":"not-a-uuid"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, uuid.Nil, uc.got.ServiceID)
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &stubUseCase{}
	rec := serve(t, uc, uuid.NewString(), `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}
