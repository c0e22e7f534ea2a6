package get_free_slots

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getFreeSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_free_slots"
)

// FreeSlotsResponse HTTP response model
type FreeSlotsResponse struct {
	EmployeeID  int64       `json:"employeeId"`
	Date        string      `json:"date"`
	WorkingTime *TimeRange  `json:"workingTime"` // null, если сотрудник не работает
	FreeSlots   []TimeRange `json:"freeSlots"`
	FreeMinutes int         `json:"freeMinutes"`
}

// TimeRange интервал времени внутри дня
type TimeRange struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func fromInterval(i domain.TimeInterval) TimeRange {
	return TimeRange{
		StartTime: i.Start.String(),
		EndTime:   i.End.String(),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeSlots.Response) *FreeSlotsResponse {
	slots := make([]TimeRange, len(resp.FreeSlots))
	for i, slot := range resp.FreeSlots {
		slots[i] = fromInterval(slot)
	}

	var workingTime *TimeRange
	if resp.WorkingTime != nil {
		wt := fromInterval(*resp.WorkingTime)
		workingTime = &wt
	}

	return &FreeSlotsResponse{
		EmployeeID:  resp.EmployeeID,
		Date:        resp.Date.Format(domain.DateFormat),
		WorkingTime: workingTime,
		FreeSlots:   slots,
		FreeMinutes: resp.FreeMinutes,
	}
}
