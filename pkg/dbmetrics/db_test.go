package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationName(t *testing.T) {
	assert.Equal(t, "select", operationName("SELECT id FROM bookings"))
	assert.Equal(t, "insert", operationName("\n  INSERT INTO customers (name) VALUES ($1)"))
	assert.Equal(t, "commit", operationName("COMMIT"))
	assert.Equal(t, "unknown", operationName("   "))
}

func TestGetExecutor(t *testing.T) {
	ctx := context.Background()
	db := &DB{}

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	tx := &Tx{parent: db}
	txCtx := WithTx(ctx, tx)

	assert.True(t, IsInTransaction(txCtx))
	assert.Same(t, tx, GetExecutor(txCtx, db))
}
