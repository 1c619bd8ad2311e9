package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andrez18/lummoo-core/internal/infra/storage/storagetest"
)

func TestCreate_DuplicateEmail(t *testing.T) {
	repo := NewRepository(storagetest.Open(t))
	ctx := context.Background()

	acc, err := repo.Create(ctx, "owner@example.com", "hash")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "owner@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)

	found, err := repo.GetByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, found.ID)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
