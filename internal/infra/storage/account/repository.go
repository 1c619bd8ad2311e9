package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/pkg/dbmetrics"
	"github.com/Andrez18/lummoo-core/pkg/pgerrors"
	"github.com/Andrez18/lummoo-core/pkg/psqlbuilder"
)

const emailUniqueConstraint = "users_email_key"

// Repository репозиторий учетных записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория учетных записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует аккаунт; email должен быть уже нормализован
func (r *Repository) Create(ctx context.Context, email, passwordHash string) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("email", "password_hash").
		Values(email, passwordHash).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	acc := &domain.Account{Email: email, PasswordHash: passwordHash}
	err = executor.QueryRowContext(ctx, query, args...).Scan(&acc.ID, &acc.CreatedAt)
	if pgerrors.IsUniqueViolation(err, emailUniqueConstraint) {
		return nil, ErrEmailAlreadyRegistered
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return acc, nil
}

// GetByEmail получает аккаунт по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "email", "password_hash", "created_at").
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var acc domain.Account
	err = executor.QueryRowContext(ctx, query, args...).Scan(&acc.ID, &acc.Email, &acc.PasswordHash, &acc.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan account: %v", ErrScanRow, err)
	}

	return &acc, nil
}
