package businesses

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/domain"
	businessRepo "github.com/Andrez18/lummoo-core/internal/infra/storage/business"
	"github.com/Andrez18/lummoo-core/internal/service/businesses/models"
	"github.com/Andrez18/lummoo-core/pkg/logger"
)

type memoryBusinesses struct {
	items map[uuid.UUID]*domain.Business
}

func (m *memoryBusinesses) Create(_ context.Context, b *domain.Business) (*domain.Business, error) {
	b.ID = uuid.New()
	m.items[b.ID] = b
	return b, nil
}

func (m *memoryBusinesses) GetByID(_ context.Context, id uuid.UUID) (*domain.Business, error) {
	b, ok := m.items[id]
	if !ok {
		return nil, businessRepo.ErrBusinessNotFound
	}
	copied := *b
	return &copied, nil
}

func (m *memoryBusinesses) ListByOwner(_ context.Context, userID uuid.UUID) ([]*domain.Business, error) {
	out := make([]*domain.Business, 0)
	for _, b := range m.items {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memoryBusinesses) Update(_ context.Context, b *domain.Business) (*domain.Business, error) {
	m.items[b.ID] = b
	return b, nil
}

func validRequest() *models.BusinessRequest {
	return &models.BusinessRequest{
		Name:    "Barbería Central",
		Email:   "Hola@Barberia.co",
		Phone:   "3001234567",
		Address: "Calle 10 # 5-20",
	}
}

func TestCreate_DefaultsHoursAndTimezone(t *testing.T) {
	svc := NewService(&memoryBusinesses{items: map[uuid.UUID]*domain.Business{}}, logger.NewNop())

	resp, err := svc.Create(context.Background(), uuid.New(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "UTC", resp.Timezone)
	assert.Equal(t, "hola@barberia.co", resp.Email)
	require.Len(t, resp.HoursDisplay, 7)
	assert.Equal(t, day("Lunes", "09:00 - 18:00"), pick(resp.HoursDisplay, "monday"))
	assert.Equal(t, day("Sábado", "09:00 - 14:00"), pick(resp.HoursDisplay, "saturday"))
	assert.Equal(t, day("Domingo", "Cerrado"), pick(resp.HoursDisplay, "sunday"))
	assert.Equal(t, "/booking/"+resp.ID.String(), resp.BookingLink)
}

func day(label, hours string) [2]string { return [2]string{label, hours} }

func pick(days []models.DayHoursResponse, key string) [2]string {
	for _, d := range days {
		if d.Key == key {
			return [2]string{d.Label, d.Hours}
		}
	}
	return [2]string{}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(&memoryBusinesses{items: map[uuid.UUID]*domain.Business{}}, logger.NewNop())

	tests := []struct {
		name   string
		mutate func(r *models.BusinessRequest)
	}{
		{"short name", func(r *models.BusinessRequest) { r.Name = "B" }},
		{"bad email", func(r *models.BusinessRequest) { r.Email = "hola" }},
		{"short phone", func(r *models.BusinessRequest) { r.Phone = "12345" }},
		{"short address", func(r *models.BusinessRequest) { r.Address = "Cl 1" }},
		{"unknown timezone", func(r *models.BusinessRequest) { r.Timezone = "Mars/Olympus" }},
		{"open after close", func(r *models.BusinessRequest) {
			r.BusinessHours = &domain.BusinessHours{Monday: &domain.DaySchedule{Open: "18:00", Close: "09:00"}}
		}},
		{"malformed hours", func(r *models.BusinessRequest) {
			r.BusinessHours = &domain.BusinessHours{Monday: &domain.DaySchedule{Open: "9am", Close: "18:00"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := svc.Create(context.Background(), uuid.New(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestGetOwn_OtherOwnerIsNotFound(t *testing.T) {
	repo := &memoryBusinesses{items: map[uuid.UUID]*domain.Business{}}
	svc := NewService(repo, logger.NewNop())
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, validRequest())
	require.NoError(t, err)

	_, err = svc.GetOwn(context.Background(), uuid.New(), created.ID)
	assert.ErrorIs(t, err, ErrBusinessNotFound)

	got, err := svc.GetOwn(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUpdate_KeepsHoursWhenOmitted(t *testing.T) {
	repo := &memoryBusinesses{items: map[uuid.UUID]*domain.Business{}}
	svc := NewService(repo, logger.NewNop())
	owner := uuid.New()

	req := validRequest()
	req.BusinessHours = &domain.BusinessHours{Monday: &domain.DaySchedule{Open: "10:00", Close: "16:00"}}
	created, err := svc.Create(context.Background(), owner, req)
	require.NoError(t, err)

	update := validRequest()
	update.Name = "Barbería Norte"
	update.Timezone = "America/Bogota"
	updated, err := svc.Update(context.Background(), owner, created.ID, update)
	require.NoError(t, err)

	assert.Equal(t, "Barbería Norte", updated.Name)
	assert.Equal(t, "America/Bogota", updated.Timezone)
	require.NotNil(t, updated.BusinessHours)
	assert.Equal(t, "16:00", updated.BusinessHours.Monday.Close)
}
