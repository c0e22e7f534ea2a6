package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AppointmentService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	location    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo: bookingRepo,
		location:    location,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Клиент может видеть только своё бронирование, администратор - любое.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !isAdmin && booking.CustomerID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// ListByCustomer возвращает бронирования клиента по возрастанию даты и времени начала
func (s *Service) ListByCustomer(ctx context.Context, customerID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListByCustomer: fetching bookings for customer=%d", customerID)

	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("ListByCustomer: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListByCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByCustomer: fetched %d bookings for customer=%d", len(bookings), customerID)
	return models.FromDomainBookingList(bookings), nil
}

// ListByMonth возвращает бронирования за месяц в формате "MM-YYYY"
func (s *Service) ListByMonth(ctx context.Context, monthYear string) (*models.BookingListResponse, error) {
	s.logger.Info("ListByMonth: fetching bookings for month=%s", monthYear)

	month, err := domain.ParseMonthYear(monthYear, s.location)
	if err != nil {
		s.logger.Warn("ListByMonth: invalid month=%s: %v", monthYear, err)
		return nil, fmt.Errorf("%w: month must be MM-YYYY", ErrInvalidInput)
	}
	first, last := domain.MonthBounds(month)

	bookings, err := s.bookingRepo.GetByPeriod(ctx, first, last)
	if err != nil {
		s.logger.Error("ListByMonth: repository error for month=%s: %v", monthYear, err)
		return nil, fmt.Errorf("%w: ListByMonth - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByMonth: fetched %d bookings for month=%s", len(bookings), monthYear)
	return models.FromDomainBookingList(bookings), nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
