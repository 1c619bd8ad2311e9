package service

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

var serviceColumns = []string{
	"s.id",
	"s.business_id",
	"s.name",
	"s.description",
	"s.price",
	"s.duration",
	"s.is_active",
	"s.created_at",
	"s.updated_at",
	"b.name",
}

// Repository репозиторий услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает услугу
func (r *Repository) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("services").
		Columns("business_id", "name", "description", "price", "duration", "is_active").
		Values(s.BusinessID, s.Name, s.Description, s.Price, s.Duration, s.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает услугу по ID вместе с названием бизнеса
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectServices().
		Where(squirrel.Eq{"s.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListActiveByBusinesses активные услуги указанных бизнесов по имени
func (r *Repository) ListActiveByBusinesses(ctx context.Context, businessIDs []uuid.UUID) ([]*domain.Service, error) {
	if len(businessIDs) == 0 {
		return []*domain.Service{}, nil
	}

	query, args, err := selectServices().
		Where(squirrel.Eq{"s.business_id": businessIDs, "s.is_active": true}).
		OrderBy("s.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByBusinesses - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListActiveByBusinesses", query, args)
}

// ListByOwner все услуги всех бизнесов пользователя, сначала новые
func (r *Repository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*domain.Service, error) {
	query, args, err := selectServices().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("s.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, "ListByOwner", query, args)
}

// Update обновляет поля услуги
func (r *Repository) Update(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("name", s.Name).
		Set("description", s.Description).
		Set("price", s.Price).
		Set("duration", s.Duration).
		Set("is_active", s.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return s, nil
}

// SetActive переключает видимость услуги в публичном каталоге
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("services").
		Set("is_active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetActive", query, args)
}

// Delete удаляет услугу; связанные бронирования удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, method, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, method, err)
	}
	if affected == 0 {
		return ErrServiceNotFound
	}

	return nil
}

func (r *Repository) query(ctx context.Context, method, query string, args []interface{}) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}
		services = append(services, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return services, nil
}

func selectServices() squirrel.SelectBuilder {
	return psqlbuilder.Select(serviceColumns...).
		From("services s").
		Join("businesses b ON b.id = s.business_id")
}

func scanService(row rowScanner) (*domain.Service, error) {
	var s domain.Service
	err := row.Scan(
		&s.ID,
		&s.BusinessID,
		&s.Name,
		&s.Description,
		&s.Price,
		&s.Duration,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.BusinessName,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
