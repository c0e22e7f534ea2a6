package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// MaxNameLength длина колонки employees.name
const MaxNameLength = 255

// Request модели

// EmployeeRequest запрос на создание сотрудника
type EmployeeRequest struct {
	Name string `json:"name"`
}

// ToDomain проверяет запрос и конвертирует его в domain модель
func (r *EmployeeRequest) ToDomain() (*domain.Employee, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, errors.New("name is too long")
	}

	return &domain.Employee{Name: name}, nil
}

// Response модели

// EmployeeResponse данные сотрудника
type EmployeeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EmployeeListResponse список сотрудников
type EmployeeListResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// FromDomainEmployee конвертирует domain модель в DTO
func FromDomainEmployee(e *domain.Employee) *EmployeeResponse {
	if e == nil {
		return nil
	}
	return &EmployeeResponse{ID: e.ID, Name: e.Name}
}

// FromDomainEmployeeList конвертирует список domain моделей в DTO
func FromDomainEmployeeList(employees []*domain.Employee) *EmployeeListResponse {
	resp := &EmployeeListResponse{Employees: make([]EmployeeResponse, 0, len(employees))}
	for _, e := range employees {
		if item := FromDomainEmployee(e); item != nil {
			resp.Employees = append(resp.Employees, *item)
		}
	}
	return resp
}
