package get_free_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	activityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/activity"
	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

// UseCase use case для получения свободных слотов сотрудника на дату
type UseCase struct {
	bookingRepo     BookingRepository
	workingTimeRepo WorkingTimeRepository
	employeeRepo    EmployeeRepository
	activityRepo    ActivityRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	workingTimeRepo WorkingTimeRepository,
	employeeRepo EmployeeRepository,
	activityRepo ActivityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		workingTimeRepo: workingTimeRepo,
		employeeRepo:    employeeRepo,
		activityRepo:    activityRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetFreeSlots: employee=%d, date=%s", req.EmployeeID, req.Date)

	// 1. Валидация входных данных
	if req.EmployeeID <= 0 {
		return nil, fmt.Errorf("%w: employeeID must be positive", ErrInvalidInput)
	}
	date, err := scheduling.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetFreeSlots: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	// 2. Проверяем сотрудника
	if _, err := uc.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			uc.logger.Warn("GetFreeSlots: employee id=%d not found", req.EmployeeID)
			return nil, ErrEmployeeNotFound
		}
		uc.logger.Error("GetFreeSlots: failed to get employee id=%d: %v", req.EmployeeID, err)
		return nil, fmt.Errorf("%w: failed to get employee: %v", ErrInternal, err)
	}

	// 3. Длительность услуги, если нужна фильтрация
	minDuration := 0
	if req.ActivityID != nil {
		activity, err := uc.activityRepo.GetByID(ctx, *req.ActivityID)
		if err != nil {
			if errors.Is(err, activityRepo.ErrActivityNotFound) {
				uc.logger.Warn("GetFreeSlots: activity id=%d not found", *req.ActivityID)
				return nil, ErrActivityNotFound
			}
			uc.logger.Error("GetFreeSlots: failed to get activity id=%d: %v", *req.ActivityID, err)
			return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
		}
		minDuration = activity.DurationMinutes
	}

	// 4. Рабочее время на дату
	workingTimes, err := uc.workingTimeRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get working time: %v", err)
		return nil, fmt.Errorf("%w: failed to get working time: %v", ErrInternal, err)
	}

	day := domain.EmployeeDay{
		EmployeeID: req.EmployeeID,
		Date:       date,
		FreeSlots:  []domain.TimeInterval{},
	}

	if len(workingTimes) == 0 {
		uc.logger.Info("GetFreeSlots: employee id=%d is not working on %s", req.EmployeeID, req.Date)
		return toResponse(day), nil
	}
	day.WorkingTime = workingTimes[0]

	// 5. Бронирования сотрудника на дату
	bookings, err := uc.bookingRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		uc.logger.Error("GetFreeSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Свободные слоты
	day.FreeSlots = filterByDuration(scheduling.ComputeFreeSlots(day.WorkingTime, bookings), minDuration)

	uc.logger.Info("GetFreeSlots: employee id=%d on %s has %d free slots (%d min)",
		req.EmployeeID, req.Date, len(day.FreeSlots), day.FreeMinutes())

	return toResponse(day), nil
}

func filterByDuration(slots []domain.TimeInterval, minutes int) []domain.TimeInterval {
	if minutes <= 0 {
		return slots
	}

	result := make([]domain.TimeInterval, 0, len(slots))
	for _, slot := range slots {
		if slot.DurationMinutes() >= minutes {
			result = append(result, slot)
		}
	}
	return result
}

func toResponse(day domain.EmployeeDay) *Response {
	resp := &Response{
		EmployeeID:  day.EmployeeID,
		Date:        day.Date,
		FreeSlots:   day.FreeSlots,
		FreeMinutes: day.FreeMinutes(),
	}
	if day.IsWorking() {
		interval := day.WorkingTime.Interval()
		resp.WorkingTime = &interval
	}
	return resp
}
