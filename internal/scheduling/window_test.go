package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func melbourne(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(domain.DefaultTimezone)
	require.NoError(t, err)
	return loc
}

func TestNextMonthWindow(t *testing.T) {
	loc := melbourne(t)
	now := time.Date(2026, time.October, 19, 15, 4, 0, 0, loc)

	tests := []struct {
		name      string
		weekStart time.Weekday
		wantStart string
		wantEnd   string
	}{
		{name: "monday weeks", weekStart: time.Monday, wantStart: "2026-10-26", wantEnd: "2026-12-06"},
		{name: "sunday weeks", weekStart: time.Sunday, wantStart: "2026-11-01", wantEnd: "2026-12-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NextMonthWindow(now, tt.weekStart)

			assert.Equal(t, tt.wantStart, w.Start.Format(domain.DateFormat))
			assert.Equal(t, tt.wantEnd, w.End.Format(domain.DateFormat))
			assert.Equal(t, "2026-10-19", w.Today.Format(domain.DateFormat))
			assert.Equal(t, tt.weekStart, w.Start.Weekday())
		})
	}
}

func TestNextMonthWindow_December(t *testing.T) {
	now := time.Date(2026, time.December, 15, 9, 0, 0, 0, time.UTC)

	w := NextMonthWindow(now, time.Monday)

	// Январь 2027 начинается в пятницу и заканчивается в воскресенье
	assert.Equal(t, "2026-12-28", w.Start.Format(domain.DateFormat))
	assert.Equal(t, "2027-01-31", w.End.Format(domain.DateFormat))
}

func TestWindow_Contains(t *testing.T) {
	loc := melbourne(t)
	now := time.Date(2026, time.October, 19, 8, 0, 0, 0, loc)
	w := NextMonthWindow(now, time.Monday)

	tests := []struct {
		date string
		want bool
	}{
		{date: "2026-10-19", want: false}, // сегодня
		{date: "2026-10-25", want: false}, // за день до начала окна
		{date: "2026-10-26", want: true},  // начало окна
		{date: "2026-11-15", want: true},
		{date: "2026-12-06", want: true},  // конец окна
		{date: "2026-12-07", want: false}, // через день после конца окна
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, w.Contains(day(tt.date)))
		})
	}
}

func TestWindow_Contains_TodayInsideFirstWeek(t *testing.T) {
	// 28 января 2026 - среда недели, в которой начинается февраль
	now := time.Date(2026, time.January, 28, 10, 0, 0, 0, time.UTC)
	w := NextMonthWindow(now, time.Monday)

	require.Equal(t, "2026-01-26", w.Start.Format(domain.DateFormat))
	require.Equal(t, "2026-03-01", w.End.Format(domain.DateFormat))

	assert.False(t, w.Contains(day("2026-01-26")))
	assert.False(t, w.Contains(day("2026-01-28")))
	assert.True(t, w.Contains(day("2026-01-29")))
	assert.True(t, w.Contains(day("2026-03-01")))
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Weekday
		wantErr bool
	}{
		{input: "monday", want: time.Monday},
		{input: "Sunday", want: time.Sunday},
		{input: " sat ", want: time.Saturday},
		{input: "Thu", want: time.Thursday},
		{input: "someday", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWeekday(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalendar_Window(t *testing.T) {
	loc := melbourne(t)
	cal := Calendar{Location: loc, WeekStart: time.Monday}

	// 31 октября 14:00 UTC - уже 1 ноября в Мельбурне
	now := time.Date(2026, time.October, 31, 14, 0, 0, 0, time.UTC)

	w := cal.Window(now)

	assert.Equal(t, "2026-11-01", w.Today.Format(domain.DateFormat))
	assert.Equal(t, "2026-11-30", w.Start.Format(domain.DateFormat))
	assert.Equal(t, "2027-01-03", w.End.Format(domain.DateFormat))
}
