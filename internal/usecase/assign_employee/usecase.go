package assign_employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

const operation = "assign_employee"

// UseCase use case для назначения сотрудника на несколько бронирований.
// Назначение атомарно: первое бронирование, которое не помещается в рабочее время
// сотрудника или пересекается с его бронированиями, отменяет всю операцию.
type UseCase struct {
	bookingRepo     BookingRepository
	workingTimeRepo WorkingTimeRepository
	employeeRepo    EmployeeRepository
	txManager       TransactionManager
	metrics         MetricsRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	workingTimeRepo WorkingTimeRepository,
	employeeRepo EmployeeRepository,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		workingTimeRepo: workingTimeRepo,
		employeeRepo:    employeeRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// employeeDay рабочее время и бронирования сотрудника на одну дату
type employeeDay struct {
	workingTime *domain.WorkingTime
	bookings    []*domain.Booking
}

// Execute выполняет use case назначения сотрудника
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AssignEmployee: employee=%d, bookings=%v", req.EmployeeID, req.BookingIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AssignEmployee: validation failed: %v", err)
		return nil, err
	}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Сотрудник существует
		if _, err := uc.employeeRepo.GetByID(txCtx, req.EmployeeID); err != nil {
			if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
				uc.logger.Warn("AssignEmployee: employee id=%d not found", req.EmployeeID)
				return ErrEmployeeNotFound
			}
			uc.logger.Error("AssignEmployee: failed to get employee id=%d: %v", req.EmployeeID, err)
			return fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
		}

		days := make(map[string]*employeeDay)

		// 3. Проверяем каждое бронирование с учётом уже назначенных в этом запросе
		for _, id := range req.BookingIDs {
			booking, err := uc.bookingRepo.GetByID(txCtx, id)
			if err != nil {
				if errors.Is(err, bookingRepo.ErrBookingNotFound) {
					uc.logger.Warn("AssignEmployee: booking id=%d not found", id)
					return fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
				}
				uc.logger.Error("AssignEmployee: failed to get booking id=%d: %v", id, err)
				return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
			}

			day, err := uc.loadDay(txCtx, days, req.EmployeeID, booking)
			if err != nil {
				return err
			}

			err = scheduling.CheckEmployeeAvailable(
				req.EmployeeID,
				booking.Date,
				booking.Interval(),
				day.workingTime,
				day.bookings,
				booking.ID,
			)
			if err != nil {
				if rejection, ok := scheduling.AsRejection(err); ok {
					uc.logger.Warn("AssignEmployee: booking id=%d rejected: %v", id, rejection)
					uc.metrics.RecordRejection(operation, rejection.KindName())
				}
				return err
			}

			assigned := *booking
			assigned.EmployeeID = &req.EmployeeID
			day.bookings = append(day.bookings, &assigned)
		}

		// 4. Все проверки пройдены, назначаем
		for _, id := range req.BookingIDs {
			if err := uc.bookingRepo.AssignEmployee(txCtx, id, req.EmployeeID); err != nil {
				if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
					uc.logger.Warn("AssignEmployee: booking id=%d conflicts concurrently: %v", id, err)
					return ErrSlotNotAvailable
				}
				uc.logger.Error("AssignEmployee: failed to assign booking id=%d: %v", id, err)
				return fmt.Errorf("%w: failed to assign booking id=%d: %v", ErrInternal, id, err)
			}
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AssignEmployee: successfully assigned employee id=%d to %d bookings",
		req.EmployeeID, len(req.BookingIDs))

	return &Response{
		EmployeeID: req.EmployeeID,
		BookingIDs: req.BookingIDs,
	}, nil
}

// loadDay возвращает (и кэширует) рабочее время и бронирования сотрудника на дату бронирования
func (uc *UseCase) loadDay(ctx context.Context, days map[string]*employeeDay, employeeID int64, booking *domain.Booking) (*employeeDay, error) {
	key := booking.Date.Format(domain.DateFormat)
	if day, ok := days[key]; ok {
		return day, nil
	}

	workingTimes, err := uc.workingTimeRepo.GetByEmployeeAndDate(ctx, employeeID, booking.Date)
	if err != nil {
		uc.logger.Error("AssignEmployee: failed to get working time on %s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to get working time: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByEmployeeAndDate(ctx, employeeID, booking.Date)
	if err != nil {
		uc.logger.Error("AssignEmployee: failed to get bookings on %s: %v", key, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	day := &employeeDay{bookings: bookings}
	if len(workingTimes) > 0 {
		day.workingTime = workingTimes[0]
	}
	days[key] = day

	return day, nil
}
