package customer

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

// Repository репозиторий клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Resolve находит клиента по email или создает нового
// Существующая запись не меняется: при конфликте вставка пропускается
// и клиент читается отдельным запросом, поэтому повторные брони не
// пишут в строку клиента. Ошибки драйвера сохраняются в цепочке.
func (r *Repository) Resolve(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	email := domain.NormalizeEmail(customer.Email)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("name", "email", "phone").
		Values(customer.Name, email, customer.Phone).
		Suffix("ON CONFLICT (email) DO NOTHING RETURNING id, name, email, phone, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Resolve - build insert query: %v", ErrBuildQuery, err)
	}

	var resolved domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resolved.ID,
		&resolved.Name,
		&resolved.Email,
		&resolved.Phone,
		&resolved.CreatedAt,
	)
	if err == nil {
		return &resolved, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: Resolve - execute insert: %w", ErrExecQuery, err)
	}

	// Клиент уже существует
	query, args, err = selectByEmail(email).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Resolve - build select query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resolved.ID,
		&resolved.Name,
		&resolved.Email,
		&resolved.Phone,
		&resolved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Resolve - select existing customer: %w", ErrExecQuery, err)
	}

	return &resolved, nil
}

// GetByEmail получает клиента по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectByEmail(domain.NormalizeEmail(email)).ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan customer: %v", ErrScanRow, err)
	}

	return &c, nil
}

// ListByBusinesses клиенты, у которых есть бронирования в указанных бизнесах
func (r *Repository) ListByBusinesses(ctx context.Context, businessIDs []uuid.UUID) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT c.id", "c.name", "c.email", "c.phone", "c.created_at").
		From("customers c").
		Join("bookings b ON b.customer_id = c.id").
		Where(squirrel.Eq{"b.business_id": businessIDs}).
		OrderBy("c.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusinesses - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusinesses - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListByBusinesses - scan row: %v", ErrScanRow, err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusinesses - rows error: %v", ErrScanRow, err)
	}

	return customers, nil
}

func selectByEmail(email string) squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "name", "email", "phone", "created_at").
		From("customers").
		Where(squirrel.Eq{"email": email})
}
