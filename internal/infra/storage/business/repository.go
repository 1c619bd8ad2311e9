package business

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/pkg/dbmetrics"
	"github.com/Andrez18/lummoo-core/pkg/psqlbuilder"
)

var businessColumns = []string{
	"id",
	"user_id",
	"name",
	"description",
	"email",
	"phone",
	"address",
	"business_hours",
	"timezone",
	"created_at",
	"updated_at",
}

// Repository репозиторий бизнесов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бизнес
func (r *Repository) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("businesses").
		Columns("user_id", "name", "description", "email", "phone", "address", "business_hours", "timezone").
		Values(b.UserID, b.Name, b.Description, b.Email, b.Phone, b.Address, b.BusinessHours, b.Timezone).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(businessColumns...).
		From("businesses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBusiness(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListByOwner бизнесы пользователя, сначала новые
func (r *Repository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*domain.Business, error) {
	query, args, err := psqlbuilder.Select(businessColumns...).
		From("businesses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListByOwner", query, args)
}

// ListAll все бизнесы по имени (публичный каталог)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Business, error) {
	query, args, err := psqlbuilder.Select(businessColumns...).
		From("businesses").
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListAll", query, args)
}

// Search вызывает SQL-функцию search_businesses
func (r *Repository) Search(ctx context.Context, term string) ([]*domain.Business, error) {
	query, args, err := psqlbuilder.Select(businessColumns...).
		From("search_businesses(?)").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "Search", query, append([]interface{}{term}, args...))
}

// Update обновляет настройки бизнеса
func (r *Repository) Update(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("businesses").
		Set("name", b.Name).
		Set("description", b.Description).
		Set("email", b.Email).
		Set("phone", b.Phone).
		Set("address", b.Address).
		Set("business_hours", b.BusinessHours).
		Set("timezone", b.Timezone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return b, nil
}

func (r *Repository) query(ctx context.Context, method, query string, args []interface{}) ([]*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	businesses := make([]*domain.Business, 0)
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		businesses = append(businesses, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return businesses, nil
}

func scanBusiness(row rowScanner) (*domain.Business, error) {
	var b domain.Business
	var hours []byte

	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.Name,
		&b.Description,
		&b.Email,
		&b.Phone,
		&b.Address,
		&hours,
		&b.Timezone,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if hours != nil {
		b.BusinessHours = &domain.BusinessHours{}
		if err := b.BusinessHours.Scan(hours); err != nil {
			return nil, err
		}
	}

	return &b, nil
}
