package roster

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
	"github.com/m04kA/SMC-AppointmentService/internal/service/roster/models"
)

// Service сервис расписания сотрудников
type Service struct {
	workingTimeRepo WorkingTimeRepository
	calendar        scheduling.Calendar
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(workingTimeRepo WorkingTimeRepository, calendar scheduling.Calendar, logger Logger) *Service {
	if calendar.Location == nil {
		calendar.Location = time.UTC
	}
	return &Service{
		workingTimeRepo: workingTimeRepo,
		calendar:        calendar,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ListByMonth возвращает рабочее время всех сотрудников за месяц "MM-YYYY",
// упорядоченное по дате и времени начала
func (s *Service) ListByMonth(ctx context.Context, monthYear string) (*models.RosterResponse, error) {
	s.logger.Info("ListByMonth: fetching roster for month=%s", monthYear)

	month, err := domain.ParseMonthYear(monthYear, s.calendar.Location)
	if err != nil {
		s.logger.Warn("ListByMonth: invalid month=%s: %v", monthYear, err)
		return nil, fmt.Errorf("%w: month must be MM-YYYY", ErrInvalidInput)
	}
	first, last := domain.MonthBounds(month)

	workingTimes, err := s.workingTimeRepo.GetByPeriod(ctx, first, last)
	if err != nil {
		s.logger.Error("ListByMonth: repository error for month=%s: %v", monthYear, err)
		return nil, fmt.Errorf("%w: ListByMonth - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(workingTimes, func(i, j int) bool {
		a, b := workingTimes[i], workingTimes[j]
		if !domain.SameDate(a.Date, b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.StartTime.IsBefore(b.StartTime)
	})

	resp := &models.RosterResponse{
		Month:        month.Format(domain.MonthYearFormat),
		WorkingTimes: make([]models.WorkingTimeResponse, 0, len(workingTimes)),
	}
	for _, wt := range workingTimes {
		if item := models.FromDomainWorkingTime(wt); item != nil {
			resp.WorkingTimes = append(resp.WorkingTimes, *item)
		}
	}

	s.logger.Info("ListByMonth: fetched %d working times for month=%s", len(resp.WorkingTimes), monthYear)
	return resp, nil
}

// Window возвращает текущее окно планирования
func (s *Service) Window() *models.WindowResponse {
	return models.FromWindow(s.calendar.Window(s.timeProvider.Now()))
}
