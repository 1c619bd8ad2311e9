package service

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectServices_JoinsBusinessName(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	query, args, err := selectServices().
		Where(squirrel.Eq{"s.business_id": ids}).
		OrderBy("s.name ASC").
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM services s JOIN businesses b ON b.id = s.business_id")
	assert.Contains(t, query, "s.business_id IN ($1,$2)")
	assert.Contains(t, query, "ORDER BY s.name ASC")
	assert.Len(t, args, 2)
}
