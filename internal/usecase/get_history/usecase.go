package get_history

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

// UseCase use case для получения истории бронирований
type UseCase struct {
	bookingRepo  BookingRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// location задаёт часовой пояс, в котором даты бронирований сравниваются с текущим моментом.
func NewUseCase(bookingRepo BookingRepository, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения истории
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now().In(uc.location)
	uc.logger.Info("GetHistory: customer=%s, now=%s", formatID(req.CustomerID), now.Format(time.RFC3339))

	// 2. Получаем бронирования
	var (
		bookings []*domain.Booking
		err      error
	)
	if req.CustomerID != nil {
		bookings, err = uc.bookingRepo.GetByCustomer(ctx, *req.CustomerID)
	} else {
		bookings, err = uc.bookingRepo.GetAll(ctx)
	}
	if err != nil {
		uc.logger.Error("GetHistory: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Делим на прошедшие и будущие
	history := scheduling.PartitionHistory(bookings, now)

	uc.logger.Info("GetHistory: %d past, %d future bookings", len(history.Past), len(history.Future))

	return &Response{
		Now:    now,
		Past:   history.Past,
		Future: history.Future,
	}, nil
}

func formatID(id *int64) string {
	if id == nil {
		return "all"
	}
	return fmt.Sprintf("%d", *id)
}
