package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/pgerr"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"customer_id",
	"employee_id",
	"activity_id",
	"booking_date",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Пересечение с другим бронированием сотрудника или клиента отклоняется ограничением
// исключения в БД и возвращается как ErrSlotNotAvailable.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"customer_id",
			"employee_id",
			"activity_id",
			"booking_date",
			"start_time",
			"end_time",
		).
		Values(
			booking.CustomerID,
			booking.EmployeeID,
			booking.ActivityID,
			booking.Date.Format(domain.DateFormat),
			booking.StartTime,
			booking.EndTime,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByEmployeeAndDate бронирования сотрудника на дату
func (r *Repository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]*domain.Booking, error) {
	return r.GetWithFilter(ctx, domain.BookingsFilter{
		EmployeeID: &employeeID,
		StartDate:  &date,
		EndDate:    &date,
	})
}

// GetByCustomerAndDate бронирования клиента на дату, независимо от сотрудника
func (r *Repository) GetByCustomerAndDate(ctx context.Context, customerID int64, date time.Time) ([]*domain.Booking, error) {
	return r.GetWithFilter(ctx, domain.BookingsFilter{
		CustomerID: &customerID,
		StartDate:  &date,
		EndDate:    &date,
	})
}

// GetByCustomer все бронирования клиента
func (r *Repository) GetByCustomer(ctx context.Context, customerID int64) ([]*domain.Booking, error) {
	return r.GetWithFilter(ctx, domain.BookingsFilter{CustomerID: &customerID})
}

// GetByPeriod бронирования за период (границы включительно)
func (r *Repository) GetByPeriod(ctx context.Context, startDate, endDate time.Time) ([]*domain.Booking, error) {
	return r.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
}

// GetAll все бронирования
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.GetWithFilter(ctx, domain.BookingsFilter{})
}

// GetWithFilter получает бронирования с фильтрацией по клиенту, сотруднику и периоду.
// Результат упорядочен по дате, времени начала и id.
//
// Внутри транзакции выборка за одну дату блокируется (FOR UPDATE), чтобы проверка
// пересечений и последующая запись не разошлись.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("booking_date ASC", "start_time ASC", "id ASC")

	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.EmployeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": filter.EndDate.Format(domain.DateFormat)})
	}

	if dbmetrics.IsInTransaction(ctx) && filter.StartDate != nil && filter.EndDate != nil &&
		domain.SameDate(*filter.StartDate, *filter.EndDate) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// AssignEmployee назначает сотрудника на бронирование
func (r *Repository) AssignEmployee(ctx context.Context, bookingID, employeeID int64) error {
	return r.setEmployee(ctx, "AssignEmployee", bookingID, &employeeID)
}

// ClearEmployee снимает сотрудника с бронирования (требуется повторное назначение)
func (r *Repository) ClearEmployee(ctx context.Context, bookingID int64) error {
	return r.setEmployee(ctx, "ClearEmployee", bookingID, nil)
}

func (r *Repository) setEmployee(ctx context.Context, op string, bookingID int64, employeeID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("employee_id", employeeID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": bookingID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// mapWriteError переводит нарушения ограничений PostgreSQL в ошибки репозитория
func mapWriteError(op string, err error) error {
	switch {
	case pgerr.IsExclusionViolation(err):
		return fmt.Errorf("%w: %s - %s", ErrSlotNotAvailable, op, pgerr.Constraint(err))
	case pgerr.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s - %s", ErrReferenceViolation, op, pgerr.Constraint(err))
	default:
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var employeeID sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.CustomerID,
		&employeeID,
		&booking.ActivityID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if employeeID.Valid {
		id := employeeID.Int64
		booking.EmployeeID = &id
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
