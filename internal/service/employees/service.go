package employees

import (
	"context"
	"errors"
	"fmt"

	employeeRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-AppointmentService/internal/service/employees/models"
)

// Service сервис сотрудников
type Service struct {
	employeeRepo EmployeeRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса сотрудников
func NewService(employeeRepo EmployeeRepository, logger Logger) *Service {
	return &Service{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// List возвращает всех сотрудников, упорядоченных по имени
func (s *Service) List(ctx context.Context) (*models.EmployeeListResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployeeList(employees), nil
}

// GetByID возвращает сотрудника по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EmployeeResponse, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, employeeRepo.ErrEmployeeNotFound) {
			s.logger.Warn("GetByID: employee id=%d not found", id)
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("GetByID: repository error for employee id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainEmployee(employee), nil
}

// Create создает сотрудника
func (s *Service) Create(ctx context.Context, req *models.EmployeeRequest) (*models.EmployeeResponse, error) {
	employee, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid employee: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created employee id=%d", created.ID)
	return models.FromDomainEmployee(created), nil
}
