// Package storagetest поднимает схему для интеграционных тестов репозиториев.
// Тесты запускаются только при заданной переменной LUMMOO_TEST_DATABASE_DSN
// и должны идти последовательно: go test -p 1 ./internal/infra/storage/...
package storagetest

import (
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// DSNEnv переменная окружения со строкой подключения к тестовой БД
const DSNEnv = "LUMMOO_TEST_DATABASE_DSN"

// Open подключается к тестовой БД, пересоздает схему и регистрирует закрытие
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set, skipping integration test", DSNEnv)
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())

	down, err := os.ReadFile(migrationPath("001_init.down.sql"))
	require.NoError(t, err)
	up, err := os.ReadFile(migrationPath("001_init.up.sql"))
	require.NoError(t, err)

	_, err = db.Exec(string(down))
	require.NoError(t, err)
	_, err = db.Exec(string(up))
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func migrationPath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "migrations", name)
}
