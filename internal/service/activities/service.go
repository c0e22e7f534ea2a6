package activities

import (
	"context"
	"errors"
	"fmt"

	activityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/activity"
	"github.com/m04kA/SMC-AppointmentService/internal/service/activities/models"
)

// Service сервис справочника услуг
type Service struct {
	activityRepo ActivityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса услуг
func NewService(activityRepo ActivityRepository, logger Logger) *Service {
	return &Service{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// List возвращает все услуги, упорядоченные по названию
func (s *Service) List(ctx context.Context) (*models.ActivityListResponse, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainActivityList(activities), nil
}

// GetByID возвращает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ActivityResponse, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}

	return models.FromDomainActivity(activity), nil
}

// Create создает услугу
func (s *Service) Create(ctx context.Context, req *models.ActivityRequest) (*models.ActivityResponse, error) {
	s.logger.Info("Create: creating activity name=%q, duration=%s", req.Name, req.Duration)

	activity, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid activity: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.activityRepo.Create(ctx, activity)
	if err != nil {
		return nil, s.mapRepoError("Create", 0, err)
	}

	s.logger.Info("Create: successfully created activity id=%d", created.ID)
	return models.FromDomainActivity(created), nil
}

// Update изменяет услугу.
// Уже созданные бронирования сохраняют своё время окончания.
func (s *Service) Update(ctx context.Context, id int64, req *models.ActivityRequest) (*models.ActivityResponse, error) {
	s.logger.Info("Update: updating activity id=%d", id)

	activity, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid activity id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	activity.ID = id

	updated, err := s.activityRepo.Update(ctx, activity)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated activity id=%d", id)
	return models.FromDomainActivity(updated), nil
}

// Delete удаляет услугу, если на неё нет бронирований
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting activity id=%d", id)

	if err := s.activityRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted activity id=%d", id)
	return nil
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, activityRepo.ErrActivityNotFound):
		s.logger.Warn("%s: activity id=%d not found", op, id)
		return ErrActivityNotFound
	case errors.Is(err, activityRepo.ErrActivityInUse):
		s.logger.Warn("%s: activity id=%d has bookings", op, id)
		return ErrActivityInUse
	case errors.Is(err, activityRepo.ErrDuplicateName):
		s.logger.Warn("%s: duplicate activity name", op)
		return ErrDuplicateName
	default:
		s.logger.Error("%s: repository error for activity id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
