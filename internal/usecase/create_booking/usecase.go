package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	activityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/activity"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/customer"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

const operation = "create_booking"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	workingTimeRepo WorkingTimeRepository
	customerRepo    CustomerRepository
	employeeRepo    EmployeeRepository
	activityRepo    ActivityRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	workingTimeRepo WorkingTimeRepository,
	customerRepo CustomerRepository,
	employeeRepo EmployeeRepository,
	activityRepo ActivityRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		workingTimeRepo: workingTimeRepo,
		customerRepo:    customerRepo,
		employeeRepo:    employeeRepo,
		activityRepo:    activityRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Снимок данных читается и бронирование записывается в одной сериализуемой транзакции,
// поэтому два параллельных запроса на один интервал не могут пройти оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, employee=%s, activity=%d, date=%s, time=%s",
		req.CustomerID, formatID(req.EmployeeID), req.ActivityID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Собираем снимок данных для проверки
		snapshot, err := uc.loadSnapshot(txCtx, req)
		if err != nil {
			return err
		}

		// 2.2. Проверяем бронирование
		booking, err := scheduling.ValidateBooking(scheduling.BookingInput{
			CustomerID: req.CustomerID,
			EmployeeID: req.EmployeeID,
			ActivityID: req.ActivityID,
			Date:       req.Date,
			StartTime:  req.StartTime,
		}, *snapshot)
		if err != nil {
			if rejection, ok := scheduling.AsRejection(err); ok {
				uc.logger.Warn("CreateBooking: rejected: %v", rejection)
				uc.metrics.RecordRejection(operation, rejection.KindName())
			}
			return err
		}

		// 2.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot taken concurrently: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.metrics.RecordBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%d (%s %s)",
		result.ID, result.Date.Format(domain.DateFormat), result.Interval())

	return &Response{
		ID:         result.ID,
		CustomerID: result.CustomerID,
		EmployeeID: result.EmployeeID,
		ActivityID: result.ActivityID,
		Date:       result.Date,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// loadSnapshot читает из БД всё, что нужно валидатору.
// Отсутствующие записи остаются nil: о них сообщит валидатор в своём порядке проверок.
func (uc *UseCase) loadSnapshot(ctx context.Context, req *Request) (*scheduling.BookingSnapshot, error) {
	snapshot := &scheduling.BookingSnapshot{}

	customer, err := uc.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil && !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}
	snapshot.Customer = customer

	activity, err := uc.activityRepo.GetByID(ctx, req.ActivityID)
	if err != nil && !errors.Is(err, activityRepo.ErrActivityNotFound) {
		uc.logger.Error("CreateBooking: failed to get activity id=%d: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}
	snapshot.Activity = activity

	if req.EmployeeID != nil {
		employee, err := uc.employeeRepo.GetByID(ctx, *req.EmployeeID)
		if err != nil && !errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Error("CreateBooking: failed to get employee id=%d: %v", *req.EmployeeID, err)
			return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
		}
		snapshot.Employee = employee
	}

	// Без корректной даты выборки по дню не нужны, валидатор отклонит запрос
	date, err := scheduling.ParseDate(req.Date)
	if err != nil {
		return snapshot, nil
	}

	if req.EmployeeID != nil && snapshot.Employee != nil {
		workingTimes, err := uc.workingTimeRepo.GetByEmployeeAndDate(ctx, *req.EmployeeID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get working time: %v", err)
			return nil, fmt.Errorf("%w: failed to get working time: %v", ErrInternal, err)
		}
		if len(workingTimes) > 0 {
			snapshot.WorkingTime = workingTimes[0]
		}

		snapshot.EmployeeBookings, err = uc.bookingRepo.GetByEmployeeAndDate(ctx, *req.EmployeeID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get employee bookings: %v", err)
			return nil, fmt.Errorf("%w: failed to get employee bookings: %v", ErrInternal, err)
		}
	}

	snapshot.CustomerBookings, err = uc.bookingRepo.GetByCustomerAndDate(ctx, req.CustomerID, date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get customer bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get customer bookings: %v", ErrInternal, err)
	}

	return snapshot, nil
}

func formatID(id *int64) string {
	if id == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *id)
}
