package business

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/internal/infra/storage/account"
	"github.com/Andrez18/lummoo-core/internal/infra/storage/storagetest"
	"github.com/Andrez18/lummoo-core/pkg/ptr"
)

func TestSearch_MatchesNameDescriptionAndAddress(t *testing.T) {
	db := storagetest.Open(t)
	ctx := context.Background()

	owner, err := account.NewRepository(db).Create(ctx, "owner@example.com", "hash")
	require.NoError(t, err)

	repo := NewRepository(db)
	for _, b := range []*domain.Business{
		{UserID: owner.ID, Name: "Barbería Central", Email: "a@x.co", Phone: "1", Address: "Calle 10", Timezone: "UTC"},
		{UserID: owner.ID, Name: "Spa Luna", Description: ptr.Ptr("cortes y barba"), Email: "b@x.co", Phone: "2", Address: "Carrera 7", Timezone: "UTC"},
		{UserID: owner.ID, Name: "Clínica Dental", Email: "c@x.co", Phone: "3", Address: "Av. Barcelona 1", Timezone: "UTC"},
		{UserID: owner.ID, Name: "Yoga Sol", Email: "d@x.co", Phone: "4", Address: "Calle 80", Timezone: "UTC"},
	} {
		_, err := repo.Create(ctx, b)
		require.NoError(t, err)
	}

	found, err := repo.Search(ctx, "BAR")
	require.NoError(t, err)

	names := make([]string, 0, len(found))
	for _, b := range found {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Barbería Central", "Clínica Dental", "Spa Luna"}, names)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestCreate_StoresBusinessHours(t *testing.T) {
	db := storagetest.Open(t)
	ctx := context.Background()

	owner, err := account.NewRepository(db).Create(ctx, "owner@example.com", "hash")
	require.NoError(t, err)

	repo := NewRepository(db)
	hours := domain.DefaultBusinessHours()
	created, err := repo.Create(ctx, &domain.Business{
		UserID: owner.ID, Name: "Barbería", Email: "a@x.co", Phone: "1", Address: "Calle 1",
		BusinessHours: hours, Timezone: "America/Bogota",
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.BusinessHours)
	assert.Equal(t, *hours, *got.BusinessHours)
	assert.Equal(t, "America/Bogota", got.Timezone)
}
