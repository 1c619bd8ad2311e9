package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "name").
		From("services").
		Where(squirrel.Eq{"business_id": "b1", "is_active": true}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name FROM services WHERE business_id = $1 AND is_active = $2", query)
	assert.Equal(t, []interface{}{"b1", true}, args)
}
