package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	// ErrInvalidName возвращается при пустом или слишком длинном названии
	ErrInvalidName = errors.New("invalid activity name")

	// ErrInvalidDuration возвращается при некорректной длительности
	ErrInvalidDuration = errors.New("invalid activity duration")
)

// Request модели

// ActivityRequest запрос на создание или изменение услуги
type ActivityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"` // "01:30" - полтора часа
}

// ToDomain проверяет запрос и конвертирует его в domain модель
func (r *ActivityRequest) ToDomain() (*domain.Activity, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" || len(name) > domain.MaxActivityNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidName, domain.MaxActivityNameLength)
	}
	if len(r.Description) > domain.MaxActivityDescription {
		return nil, fmt.Errorf("%w: description is too long", ErrInvalidName)
	}

	minutes, err := ParseDuration(r.Duration)
	if err != nil {
		return nil, err
	}

	return &domain.Activity{
		Name:            name,
		Description:     r.Description,
		DurationMinutes: minutes,
	}, nil
}

// ParseDuration переводит длительность "HH:MM" в минуты (от 00:01 до 23:59)
func ParseDuration(s string) (int, error) {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	minutes := ts.Minutes()
	if minutes < domain.MinActivityDurationMinutes || minutes > domain.MaxActivityDurationMinutes {
		return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidDuration, s)
	}

	return minutes, nil
}

// FormatDuration переводит минуты в "HH:MM"
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Response модели

// ActivityResponse ответ с данными услуги
type ActivityResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Duration        string    `json:"duration"`
	DurationMinutes int       `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ActivityListResponse ответ со списком услуг
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// FromDomainActivity конвертирует domain модель в DTO
func FromDomainActivity(a *domain.Activity) *ActivityResponse {
	if a == nil {
		return nil
	}

	return &ActivityResponse{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		Duration:        FormatDuration(a.DurationMinutes),
		DurationMinutes: a.DurationMinutes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainActivityList конвертирует список domain моделей в DTO
func FromDomainActivityList(activities []*domain.Activity) *ActivityListResponse {
	resp := &ActivityListResponse{
		Activities: make([]ActivityResponse, 0, len(activities)),
	}

	for _, activity := range activities {
		if a := FromDomainActivity(activity); a != nil {
			resp.Activities = append(resp.Activities, *a)
		}
	}

	return resp
}
