package create_working_time

import (
	"context"
	"errors"
	"fmt"

	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	workingTimeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/working_time"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

const (
	operation = "create_working_time"
	action    = "created"
)

// UseCase use case для добавления рабочего времени в ростер
type UseCase struct {
	workingTimeRepo WorkingTimeRepository
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
	employeeRepo EmployeeRepository,
	txManager TransactionManager,
	calendar scheduling.Calendar,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		workingTimeRepo: workingTimeRepo,
		employeeRepo:    employeeRepo,
		txManager:       txManager,
		calendar:        calendar,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания рабочего времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateWorkingTime: employee=%d, date=%s, time=%s-%s",
		req.EmployeeID, req.Date, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateWorkingTime: validation failed: %v", err)
		return nil, err
	}

	// 2. Окно планирования считается от текущей даты
	window := uc.calendar.Window(uc.timeProvider.Now())

	var result *Response

	// 3. Проверка и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Снимок данных
		snapshot := scheduling.RosterSnapshot{}

		employee, err := uc.employeeRepo.GetByID(txCtx, req.EmployeeID)
		if err != nil && !errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Error("CreateWorkingTime: failed to get employee id=%d: %v", req.EmployeeID, err)
			return fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
		}
		snapshot.Employee = employee

		if date, err := scheduling.ParseDate(req.Date); err == nil && employee != nil {
			snapshot.Existing, err = uc.workingTimeRepo.GetByEmployeeAndDate(txCtx, req.EmployeeID, date)
			if err != nil {
				uc.logger.Error("CreateWorkingTime: failed to get existing working time: %v", err)
				return fmt.Errorf("%w: failed to get existing working time: %v", ErrInternal, err)
			}
		}

		// 3.2. Проверка
		decision, err := scheduling.ValidateRoster(scheduling.RosterInput{
			EmployeeID: req.EmployeeID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
		}, snapshot, window)
		if err != nil {
			if rejection, ok := scheduling.AsRejection(err); ok {
				uc.logger.Warn("CreateWorkingTime: rejected: %v", rejection)
				uc.metrics.RecordRejection(operation, rejection.KindName())
			}
			return err
		}

		// 3.3. Сохранение
		created, err := uc.workingTimeRepo.Create(txCtx, decision.WorkingTime)
		if err != nil {
			if errors.Is(err, workingTimeRepo.ErrDuplicateWorkingTime) {
				uc.logger.Warn("CreateWorkingTime: created concurrently: %v", err)
				return ErrDuplicateWorkingTime
			}
			uc.logger.Error("CreateWorkingTime: failed to create working time: %v", err)
			return fmt.Errorf("%w: failed to create working time: %v", ErrInternal, err)
		}

		result = &Response{
			ID:         created.ID,
			EmployeeID: created.EmployeeID,
			Date:       created.Date,
			StartTime:  created.StartTime,
			EndTime:    created.EndTime,
			CreatedAt:  created.CreatedAt,
			UpdatedAt:  created.UpdatedAt,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordWorkingTimeSaved(action)
	uc.logger.Info("CreateWorkingTime: successfully created working time id=%d", result.ID)

	return result, nil
}
