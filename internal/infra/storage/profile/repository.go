package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/pkg/dbmetrics"
	"github.com/Andrez18/lummoo-core/pkg/psqlbuilder"
)

var profileColumns = []string{"id", "full_name", "phone", "is_admin", "created_at", "updated_at"}

// Repository репозиторий профилей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает профиль по ID аккаунта
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan profile: %v", ErrScanRow, err)
	}

	return p, nil
}

// EnsureExists создает пустой профиль (не администратор), если его еще нет,
// и возвращает актуальную запись
func (r *Repository) EnsureExists(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("profiles").
		Columns("id", "is_admin").
		Values(id, false).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: EnsureExists - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: EnsureExists - execute insert: %v", ErrExecQuery, err)
	}

	return r.Get(ctx, id)
}

// Update обновляет имя и телефон; флаг администратора не меняется
func (r *Repository) Update(ctx context.Context, id uuid.UUID, fullName, phone *string) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("profiles").
		Set("full_name", fullName).
		Set("phone", phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(profileColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	p, err := scanProfile(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return p, nil
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.FullName, &p.Phone, &p.IsAdmin, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
