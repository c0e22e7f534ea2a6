package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func interval(start, end string) domain.TimeInterval {
	return domain.TimeInterval{Start: types.TimeString(start), End: types.TimeString(end)}
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func booking(id int64, employeeID *int64, customerID int64, date, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		CustomerID: customerID,
		EmployeeID: employeeID,
		ActivityID: 1,
		Date:       day(date),
		StartTime:  types.TimeString(start),
		EndTime:    types.TimeString(end),
	}
}

func TestFreeSlots(t *testing.T) {
	tests := []struct {
		name        string
		workingTime domain.TimeInterval
		bookings    []domain.TimeInterval
		want        []domain.TimeInterval
	}{
		{
			name:        "no bookings",
			workingTime: interval("09:00", "17:00"),
			want:        []domain.TimeInterval{interval("09:00", "17:00")},
		},
		{
			name:        "day with four bookings",
			workingTime: interval("09:00", "22:00"),
			bookings: []domain.TimeInterval{
				interval("09:00", "12:00"),
				interval("13:30", "15:00"),
				interval("16:00", "17:00"),
				interval("19:21", "21:00"),
			},
			want: []domain.TimeInterval{
				interval("12:00", "13:30"),
				interval("15:00", "16:00"),
				interval("17:00", "19:21"),
				interval("21:00", "22:00"),
			},
		},
		{
			name:        "unsorted bookings",
			workingTime: interval("09:00", "22:00"),
			bookings: []domain.TimeInterval{
				interval("19:21", "21:00"),
				interval("09:00", "12:00"),
				interval("16:00", "17:00"),
				interval("13:30", "15:00"),
			},
			want: []domain.TimeInterval{
				interval("12:00", "13:30"),
				interval("15:00", "16:00"),
				interval("17:00", "19:21"),
				interval("21:00", "22:00"),
			},
		},
		{
			name:        "fully booked",
			workingTime: interval("09:00", "12:00"),
			bookings: []domain.TimeInterval{
				interval("09:00", "10:00"),
				interval("10:00", "12:00"),
			},
			want: []domain.TimeInterval{},
		},
		{
			name:        "adjacent bookings leave no zero-width slot",
			workingTime: interval("09:00", "13:00"),
			bookings: []domain.TimeInterval{
				interval("10:00", "11:00"),
				interval("11:00", "12:00"),
			},
			want: []domain.TimeInterval{
				interval("09:00", "10:00"),
				interval("12:00", "13:00"),
			},
		},
		{
			name:        "booking outside working time is ignored",
			workingTime: interval("09:00", "12:00"),
			bookings: []domain.TimeInterval{
				interval("08:00", "09:30"),
				interval("10:00", "10:30"),
				interval("12:00", "13:00"),
			},
			want: []domain.TimeInterval{
				interval("09:00", "10:00"),
				interval("10:30", "12:00"),
			},
		},
		{
			name:        "ends at last minute of the day",
			workingTime: interval("20:00", "23:59"),
			bookings:    []domain.TimeInterval{interval("20:00", "21:00")},
			want:        []domain.TimeInterval{interval("21:00", "23:59")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FreeSlots(tt.workingTime, tt.bookings)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFreeSlots_DoesNotReorderInput(t *testing.T) {
	bookings := []domain.TimeInterval{
		interval("13:00", "14:00"),
		interval("10:00", "11:00"),
	}

	FreeSlots(interval("09:00", "17:00"), bookings)

	assert.Equal(t, interval("13:00", "14:00"), bookings[0])
}

func TestFreeSlots_ReconstructsWorkingTime(t *testing.T) {
	workingTime := interval("08:00", "20:00")
	bookings := []domain.TimeInterval{
		interval("08:30", "09:15"),
		interval("11:00", "12:00"),
		interval("12:00", "12:45"),
		interval("17:10", "19:00"),
	}

	slots := FreeSlots(workingTime, bookings)

	// Свободные слоты не пересекаются между собой и с бронированиями
	for i := range slots {
		require.NoError(t, slots[i].Validate())
		if i > 0 {
			assert.False(t, slots[i].Start.IsBefore(slots[i-1].End), "slots must be chronological")
		}
		for _, b := range bookings {
			assert.False(t, slots[i].Overlaps(b), "slot %s overlaps booking %s", slots[i], b)
		}
	}

	// Покрытие минута в минуту
	total := 0
	for _, s := range slots {
		total += s.DurationMinutes()
	}
	for _, b := range bookings {
		total += b.DurationMinutes()
	}
	assert.Equal(t, workingTime.DurationMinutes(), total)
}

func TestComputeFreeSlots(t *testing.T) {
	employeeID := int64(7)
	other := int64(8)

	workingTime := &domain.WorkingTime{
		ID:         1,
		EmployeeID: employeeID,
		Date:       day("2026-11-10"),
		StartTime:  "09:00",
		EndTime:    "17:00",
	}

	bookings := []*domain.Booking{
		booking(1, ptr.Ptr(employeeID), 100, "2026-11-10", "10:00", "11:00"),
		booking(2, ptr.Ptr(other), 101, "2026-11-10", "12:00", "13:00"),
		booking(3, ptr.Ptr(employeeID), 102, "2026-11-11", "14:00", "15:00"),
		booking(4, nil, 103, "2026-11-10", "15:00", "16:00"),
	}

	got := ComputeFreeSlots(workingTime, bookings)

	assert.Equal(t, []domain.TimeInterval{
		interval("09:00", "10:00"),
		interval("11:00", "17:00"),
	}, got)
}

func TestComputeFreeSlots_NoWorkingTime(t *testing.T) {
	got := ComputeFreeSlots(nil, nil)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
