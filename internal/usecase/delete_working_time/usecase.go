package delete_working_time

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	workingTimeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/working_time"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

const (
	operation = "delete_working_time"
	action    = "deleted"
)

// UseCase use case для удаления рабочего времени.
// Удалять можно только рабочее время внутри окна планирования; все бронирования
// сотрудника на эту дату теряют сотрудника в той же транзакции.
type UseCase struct {
	workingTimeRepo WorkingTimeRepository
	bookingRepo     BookingRepository
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
	txManager TransactionManager,
	calendar scheduling.Calendar,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		workingTimeRepo: workingTimeRepo,
		bookingRepo:     bookingRepo,
		txManager:       txManager,
		calendar:        calendar,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case удаления рабочего времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DeleteWorkingTime: id=%d", req.WorkingTimeID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DeleteWorkingTime: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно планирования
	window := uc.calendar.Window(uc.timeProvider.Now())

	var result *Response

	// 3. Проверка, удаление и каскад в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Удаляемая запись
		workingTime, err := uc.workingTimeRepo.GetByID(txCtx, req.WorkingTimeID)
		if err != nil {
			if errors.Is(err, workingTimeRepo.ErrWorkingTimeNotFound) {
				uc.logger.Warn("DeleteWorkingTime: working time id=%d not found", req.WorkingTimeID)
				return ErrWorkingTimeNotFound
			}
			uc.logger.Error("DeleteWorkingTime: failed to get working time id=%d: %v", req.WorkingTimeID, err)
			return fmt.Errorf("%w: failed to get working time: %v", ErrInternal, err)
		}

		// 3.2. Бронирования сотрудника на эту дату
		bookings, err := uc.bookingRepo.GetByEmployeeAndDate(txCtx, workingTime.EmployeeID, workingTime.Date)
		if err != nil {
			uc.logger.Error("DeleteWorkingTime: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.3. Проверка
		unassigned, err := scheduling.ValidateRosterRemoval(workingTime, bookings, window)
		if err != nil {
			if rejection, ok := scheduling.AsRejection(err); ok {
				uc.logger.Warn("DeleteWorkingTime: rejected: %v", rejection)
				uc.metrics.RecordRejection(operation, rejection.KindName())
			}
			return err
		}

		// 3.4. Снимаем сотрудника с бронирований
		for _, b := range unassigned {
			if err := uc.bookingRepo.ClearEmployee(txCtx, b.ID); err != nil {
				uc.logger.Error("DeleteWorkingTime: failed to unassign booking id=%d: %v", b.ID, err)
				return fmt.Errorf("%w: failed to unassign booking id=%d: %v", ErrInternal, b.ID, err)
			}
			uc.logger.Warn("DeleteWorkingTime: booking id=%d (%s %s) lost its working time, employee cleared",
				b.ID, b.Date.Format(domain.DateFormat), b.Interval())
		}

		// 3.5. Удаление
		if err := uc.workingTimeRepo.Delete(txCtx, workingTime.ID); err != nil {
			if errors.Is(err, workingTimeRepo.ErrWorkingTimeNotFound) {
				return ErrWorkingTimeNotFound
			}
			uc.logger.Error("DeleteWorkingTime: failed to delete working time id=%d: %v", workingTime.ID, err)
			return fmt.Errorf("%w: failed to delete working time: %v", ErrInternal, err)
		}

		result = toResponse(workingTime, unassigned)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordWorkingTimeSaved(action)
	uc.metrics.RecordBookingsUnassigned(len(result.Unassigned))
	uc.logger.Info("DeleteWorkingTime: successfully deleted working time id=%d, %d bookings unassigned",
		result.ID, len(result.Unassigned))

	return result, nil
}

func toResponse(wt *domain.WorkingTime, unassigned []*domain.Booking) *Response {
	resp := &Response{
		ID:         wt.ID,
		EmployeeID: wt.EmployeeID,
		Date:       wt.Date,
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
