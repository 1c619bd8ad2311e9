package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Andrez18/lummoo-core/internal/domain"
	"github.com/Andrez18/lummoo-core/pkg/dbmetrics"
	"github.com/Andrez18/lummoo-core/pkg/pgerrors"
	"github.com/Andrez18/lummoo-core/pkg/psqlbuilder"
)

// slotConstraint уникальный индекс активного слота (см. migrations)
const slotConstraint = "bookings_slot_unique"

var bookingColumns = []string{
	"b.id",
	"b.business_id",
	"b.service_id",
	"b.customer_id",
	"b.booking_date",
	"b.start_time",
	"b.end_time",
	"b.status",
	"b.notes",
	"b.created_at",
	"b.updated_at",
}

var detailsColumns = append(append([]string{}, bookingColumns...),
	"c.name",
	"c.email",
	"c.phone",
	"s.name",
	"s.price",
	"bz.name",
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникальности слота возвращается как ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"business_id",
			"service_id",
			"customer_id",
			"booking_date",
			"start_time",
			"end_time",
			"status",
			"notes",
		).
		Values(
			booking.BusinessID,
			booking.ServiceID,
			booking.CustomerID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if pgerrors.IsUniqueViolation(err, slotConstraint) || pgerrors.IsExclusionViolation(err, "") || pgerrors.IsSerializationFailure(err) {
		return nil, ErrSlotTaken
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetDetailsByID получает бронирование с данными клиента, услуги и бизнеса
func (r *Repository) GetDetailsByID(ctx context.Context, id uuid.UUID) (*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsSelect().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - build select query: %v", ErrBuildQuery, err)
	}

	details, err := scanDetails(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDetailsByID - scan booking: %v", ErrScanRow, err)
	}

	return details, nil
}

// GetByFilter получает бронирования по фильтру
// Внутри транзакции для конкретной даты строки блокируются (FOR UPDATE),
// чтобы параллельное создание бронирования на тот же день ждало коммита.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(psqlbuilder.Select(bookingColumns...).From("bookings b"), filter).
		OrderBy("b.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// ListDetails получает бронирования с данными клиента, услуги и бизнеса
// Сортировка: сначала новые даты
func (r *Repository) ListDetails(ctx context.Context, filter domain.BookingsFilter) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(detailsSelect(), filter).
		OrderBy("b.booking_date DESC", "b.start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingDetails, 0)
	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDetails - scan row: %v", ErrScanRow, err)
		}
		result = append(result, details)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDetails - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus переводит бронирование из статуса from в статус to
// Обновление условное: если статус уже изменила другая транзакция,
// строка не меняется и возвращается ErrStatusChanged.
// Возврат отмененной записи в активный статус на занятый слот дает ErrSlotTaken.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if pgerrors.IsUniqueViolation(err, slotConstraint) || pgerrors.IsExclusionViolation(err, "") {
		return ErrSlotTaken
	}
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected > 0 {
		return nil
	}

	// 0 строк: записи нет или её статус уже не from
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}

	return ErrStatusChanged
}

func detailsSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailsColumns...).
		From("bookings b").
		Join("customers c ON c.id = b.customer_id").
		Join("services s ON s.id = b.service_id").
		Join("businesses bz ON bz.id = b.business_id")
}

func applyFilter(sb squirrel.SelectBuilder, filter domain.BookingsFilter) squirrel.SelectBuilder {
	sb = sb.Where(squirrel.Eq{"b.business_id": filter.BusinessIDs})

	if filter.ServiceID != nil {
		sb = sb.Where(squirrel.Eq{"b.service_id": *filter.ServiceID})
	}
	if filter.Date != nil {
		sb = sb.Where(squirrel.Eq{"b.booking_date": filter.Date.Format(domain.DateFormat)})
	}
	if filter.Status != nil {
		sb = sb.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if filter.ActiveOnly {
		sb = sb.Where(squirrel.NotEq{"b.status": domain.StatusCancelled})
	}

	return sb
}

func bookingDest(b *domain.Booking) []interface{} {
	return []interface{}{
		&b.ID,
		&b.BusinessID,
		&b.ServiceID,
		&b.CustomerID,
		&b.BookingDate,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.Notes,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	if err := row.Scan(bookingDest(&booking)...); err != nil {
		return nil, err
	}
	return &booking, nil
}

func scanDetails(row rowScanner) (*domain.BookingDetails, error) {
	var d domain.BookingDetails
	dest := append(bookingDest(&d.Booking),
		&d.CustomerName,
		&d.CustomerEmail,
		&d.CustomerPhone,
		&d.ServiceName,
		&d.ServicePrice,
		&d.BusinessName,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &d, nil
}
