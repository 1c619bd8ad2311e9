package profiles

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/internal/service/profiles/models"
	"github.com/Andrez18/lummoo-core/pkg/logger"
	"github.com/Andrez18/lummoo-core/pkg/ptr"
)

type memoryProfiles map[uuid.UUID]*domain.Profile

func (m memoryProfiles) EnsureExists(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	if p, ok := m[id]; ok {
		return p, nil
	}
	m[id] = &domain.Profile{ID: id}
	return m[id], nil
}

func (m memoryProfiles) Update(_ context.Context, id uuid.UUID, fullName, phone *string) (*domain.Profile, error) {
	p := m[id]
	p.FullName = fullName
	p.Phone = phone
	return p, nil
}

func TestLoadSession_CreatesNonAdminProfile(t *testing.T) {
	repo := memoryProfiles{}
	svc := NewService(repo, logger.NewNop())
	userID := uuid.New()

	session, err := svc.LoadSession(context.Background(), userID, "owner@example.com")
	require.NoError(t, err)

	assert.Equal(t, userID, session.UserID)
	assert.False(t, session.IsAdmin())
	assert.Contains(t, repo, userID)
}

func TestLoadSession_KeepsAdminFlag(t *testing.T) {
	userID := uuid.New()
	repo := memoryProfiles{userID: {ID: userID, IsAdmin: true}}
	svc := NewService(repo, logger.NewNop())

	session, err := svc.LoadSession(context.Background(), userID, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
}

func TestUpdate(t *testing.T) {
	userID := uuid.New()
	repo := memoryProfiles{userID: {ID: userID}}
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.Update(context.Background(), userID, &models.UpdateProfileRequest{
		FullName: ptr.Ptr("  Ana Gómez "),
		Phone:    ptr.Ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Gómez", *resp.FullName)
	assert.Nil(t, resp.Phone)

	_, err = svc.Update(context.Background(), userID, &models.UpdateProfileRequest{
		FullName: ptr.Ptr(strings.Repeat("a", 201)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
