package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/scheduling"
)

// WorkingTimeResponse ответ с данными рабочего времени
type WorkingTimeResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employeeId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// RosterResponse рабочее время за месяц
type RosterResponse struct {
	Month        string                `json:"month"` // "11-2026"
	WorkingTimes []WorkingTimeResponse `json:"workingTimes"`
}

// WindowResponse даты, на которые можно создавать и изменять рабочее время
type WindowResponse struct {
	Today     string `json:"today"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// FromDomainWorkingTime конвертирует domain модель в DTO
func FromDomainWorkingTime(wt *domain.WorkingTime) *WorkingTimeResponse {
	if wt == nil {
		return nil
	}

	return &WorkingTimeResponse{
		ID:         wt.ID,
		EmployeeID: wt.EmployeeID,
		Date:       wt.Date.Format(domain.DateFormat),
		StartTime:  wt.StartTime.String(),
		EndTime:    wt.EndTime.String(),
		CreatedAt:  wt.CreatedAt,
		UpdatedAt:  wt.UpdatedAt,
	}
}

// FromWindow конвертирует окно планирования в DTO
func FromWindow(w scheduling.Window) *WindowResponse {
	return &WindowResponse{
		Today:     w.Today.Format(domain.DateFormat),
		StartDate: w.Start.Format(domain.DateFormat),
		EndDate:   w.End.Format(domain.DateFormat),
	}
}
