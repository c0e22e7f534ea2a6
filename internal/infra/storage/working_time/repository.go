package working_time

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

const table = "working_times"

var columns = []string{
	"id",
	"employee_id",
	"work_date",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий рабочего времени сотрудников (ростер)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет рабочее время
func (r *Repository) Create(ctx context.Context, wt *domain.WorkingTime) (*domain.WorkingTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("employee_id", "work_date", "start_time", "end_time").
		Values(wt.EmployeeID, wt.Date.Format(domain.DateFormat), wt.StartTime, wt.EndTime).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&wt.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, mapWriteError("Create", err)
	}

	wt.CreatedAt = createdAt.Time
	wt.UpdatedAt = updatedAt.Time

	return wt, nil
}

// Update обновляет сотрудника, дату и интервал рабочего времени
func (r *Repository) Update(ctx context.Context, wt *domain.WorkingTime) (*domain.WorkingTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("employee_id", wt.EmployeeID).
		Set("work_date", wt.Date.Format(domain.DateFormat)).
		Set("start_time", wt.StartTime).
		Set("end_time", wt.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": wt.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrWorkingTimeNotFound
	}
	if err != nil {
		return nil, mapWriteError("Update", err)
	}

	wt.CreatedAt = createdAt.Time
	wt.UpdatedAt = updatedAt.Time

	return wt, nil
}

// GetByID получает рабочее время по ID; внутри транзакции строка блокируется
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.WorkingTime, error) {
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

	wt, err := scanWorkingTime(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrWorkingTimeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan working time: %v", ErrScanRow, err)
	}

	return wt, nil
}

// GetByEmployeeAndDate рабочее время сотрудника на дату (ноль или одна запись)
func (r *Repository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) ([]*domain.WorkingTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"employee_id": employeeID,
			"work_date":   date.Format(domain.DateFormat),
		}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmployeeAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWorkingTimes(rows)
}

// GetByPeriod рабочее время всех сотрудников за период (границы включительно),
// упорядоченное по дате и времени начала
func (r *Repository) GetByPeriod(ctx context.Context, startDate, endDate time.Time) ([]*domain.WorkingTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.GtOrEq{"work_date": startDate.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"work_date": endDate.Format(domain.DateFormat)}).
		OrderBy("work_date ASC", "start_time ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanWorkingTimes(rows)
}

// Delete удаляет рабочее время
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
		return ErrWorkingTimeNotFound
	}

	return nil
}

func mapWriteError(op string, err error) error {
	switch {
	case pgerr.IsUniqueViolation(err):
		return fmt.Errorf("%w: %s - %s", ErrDuplicateWorkingTime, op, pgerr.Constraint(err))
	case pgerr.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %s - %s", ErrReferenceViolation, op, pgerr.Constraint(err))
	default:
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorkingTime(row rowScanner) (*domain.WorkingTime, error) {
	var wt domain.WorkingTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&wt.ID,
		&wt.EmployeeID,
		&wt.Date,
		&wt.StartTime,
		&wt.EndTime,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	wt.CreatedAt = createdAt.Time
	wt.UpdatedAt = updatedAt.Time

	return &wt, nil
}

func scanWorkingTimes(rows *sql.Rows) ([]*domain.WorkingTime, error) {
	result := make([]*domain.WorkingTime, 0)

	for rows.Next() {
		wt, err := scanWorkingTime(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanWorkingTimes - scan row: %v", ErrScanRow, err)
		}
		result = append(result, wt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanWorkingTimes - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
