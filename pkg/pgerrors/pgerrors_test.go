package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert failed: %w", &pq.Error{Code: "23505", Constraint: "users_email_key"})

	assert.True(t, IsUniqueViolation(err, ""))
	assert.True(t, IsUniqueViolation(err, "users_email_key"))
	assert.False(t, IsUniqueViolation(err, "customers_email_key"))
	assert.False(t, IsExclusionViolation(err, ""))
}

func TestIsExclusionViolation(t *testing.T) {
	err := &pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"}

	assert.True(t, IsExclusionViolation(err, "bookings_no_overlap"))
	assert.False(t, IsUniqueViolation(err, ""))
}

func TestPlainErrorsAreNotClassified(t *testing.T) {
	err := errors.New("duplicate key value violates unique constraint")

	assert.False(t, IsUniqueViolation(err, ""))
	assert.False(t, IsForeignKeyViolation(err))
	assert.False(t, IsSerializationFailure(err))
}
