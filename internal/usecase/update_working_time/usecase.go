package update_working_time

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	workingTimeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/working_time"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

const (
	operation = "update_working_time"
	action    = "updated"
)

// UseCase use case для изменения рабочего времени.
// Бронирования, которые перестали помещаться в рабочее время, теряют сотрудника
// в той же транзакции и возвращаются вызывающему.
type UseCase struct {
	workingTimeRepo WorkingTimeRepository
	bookingRepo     BookingRepository
	employeeRepo    EmployeeRepository
	txManager       TransactionManager
	calendar        scheduling.Calendar
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	workingTimeRepo WorkingTimeRepository,
	bookingRepo BookingRepository,
	employeeRepo EmployeeRepository,
	txManager TransactionManager,
	calendar scheduling.Calendar,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		workingTimeRepo: workingTimeRepo,
		bookingRepo:     bookingRepo,
		employeeRepo:    employeeRepo,
		txManager:       txManager,
		calendar:        calendar,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case изменения рабочего времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateWorkingTime: id=%d, employee=%d, date=%s, time=%s-%s",
		req.WorkingTimeID, req.EmployeeID, req.Date, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateWorkingTime: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно планирования
	window := uc.calendar.Window(uc.timeProvider.Now())

	var result *Response

	// 3. Проверка, запись и каскад в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Редактируемая запись
		previous, err := uc.workingTimeRepo.GetByID(txCtx, req.WorkingTimeID)
		if err != nil {
			if errors.Is(err, workingTimeRepo.ErrWorkingTimeNotFound) {
				uc.logger.Warn("UpdateWorkingTime: working time id=%d not found", req.WorkingTimeID)
				return ErrWorkingTimeNotFound
			}
			uc.logger.Error("UpdateWorkingTime: failed to get working time id=%d: %v", req.WorkingTimeID, err)
			return fmt.Errorf("%w: failed to get working time: %v", ErrInternal, err)
		}

		// 3.2. Снимок данных
		snapshot, err := uc.loadSnapshot(txCtx, req, previous)
		if err != nil {
			return err
		}

		// 3.3. Проверка
		decision, err := scheduling.ValidateRoster(scheduling.RosterInput{
			EmployeeID: req.EmployeeID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
		}, *snapshot, window)
		if err != nil {
			if rejection, ok := scheduling.AsRejection(err); ok {
				uc.logger.Warn("UpdateWorkingTime: rejected: %v", rejection)
				uc.metrics.RecordRejection(operation, rejection.KindName())
			}
			return err
		}

		// 3.4. Сохранение
		updated, err := uc.workingTimeRepo.Update(txCtx, decision.WorkingTime)
		if err != nil {
			switch {
			case errors.Is(err, workingTimeRepo.ErrWorkingTimeNotFound):
				return ErrWorkingTimeNotFound
			case errors.Is(err, workingTimeRepo.ErrDuplicateWorkingTime):
				uc.logger.Warn("UpdateWorkingTime: date taken concurrently: %v", err)
				return ErrDuplicateWorkingTime
			}
			uc.logger.Error("UpdateWorkingTime: failed to update working time id=%d: %v", req.WorkingTimeID, err)
			return fmt.Errorf("%w: failed to update working time: %v", ErrInternal, err)
		}

		// 3.5. Снимаем сотрудника с бронирований, которые больше не помещаются
		for _, b := range decision.Unassigned {
			if err := uc.bookingRepo.ClearEmployee(txCtx, b.ID); err != nil {
				uc.logger.Error("UpdateWorkingTime: failed to unassign booking id=%d: %v", b.ID, err)
				return fmt.Errorf("%w: failed to unassign booking id=%d: %v", ErrInternal, b.ID, err)
			}
			uc.logger.Warn("UpdateWorkingTime: booking id=%d (%s %s) no longer fits, employee cleared",
				b.ID, b.Date.Format(domain.DateFormat), b.Interval())
		}

		result = toResponse(updated, decision.Unassigned)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordWorkingTimeSaved(action)
	uc.metrics.RecordBookingsUnassigned(len(result.Unassigned))
	uc.logger.Info("UpdateWorkingTime: successfully updated working time id=%d, %d bookings unassigned",
		result.ID, len(result.Unassigned))

	return result, nil
}

func (uc *UseCase) loadSnapshot(ctx context.Context, req *Request, previous *domain.WorkingTime) (*scheduling.RosterSnapshot, error) {
	snapshot := &scheduling.RosterSnapshot{Previous: previous}

	employee, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil && !errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
		uc.logger.Error("UpdateWorkingTime: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}
	snapshot.Employee = employee

	if date, err := scheduling.ParseDate(req.Date); err == nil && employee != nil {
		snapshot.Existing, err = uc.workingTimeRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
		if err != nil {
			uc.logger.Error("UpdateWorkingTime: failed to get existing working time: %v", err)
			return nil, fmt.Errorf("%w: failed to get existing working time: %v", ErrInternal, err)
		}
	}

	snapshot.PreviousBookings, err = uc.bookingRepo.GetByEmployeeAndDate(ctx, previous.EmployeeID, previous.Date)
	if err != nil {
		uc.logger.Error("UpdateWorkingTime: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return snapshot, nil
}

func toResponse(wt *domain.WorkingTime, unassigned []*domain.Booking) *Response {
	resp := &Response{
		ID:         wt.ID,
		EmployeeID: wt.EmployeeID,
		Date:       wt.Date,
		StartTime:  wt.StartTime,
		EndTime:    wt.EndTime,
		CreatedAt:  wt.CreatedAt,
		UpdatedAt:  wt.UpdatedAt,
		Unassigned: make([]UnassignedBooking, 0, len(unassigned)),
	}

	for _, b := range unassigned {
		resp.Unassigned = append(resp.Unassigned, UnassignedBooking{
			ID:         b.ID,
			CustomerID: b.CustomerID,
			ActivityID: b.ActivityID,
			Date:       b.Date,
			StartTime:  b.StartTime,
			EndTime:    b.EndTime,
		})
	}

	return resp
}
