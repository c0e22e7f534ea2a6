package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "midnight", input: "00:00"},
		{name: "last minute", input: "23:59"},
		{name: "regular", input: "09:30"},
		{name: "single digit hour", input: "9:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "seconds", input: "10:00:00", wantErr: true},
		{name: "garbage", input: "johndoe", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	start := TimeString("22:00")

	end, err := start.AddMinutes(119)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), end)

	_, err = start.AddMinutes(120)
	assert.ErrorIs(t, err, ErrOutOfDay)
}

func TestTimeString_Compare(t *testing.T) {
	a := TimeString("09:00")
	b := TimeString("13:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.True(t, a.Equal(TimeString("09:00")))
	assert.Equal(t, 9*60, a.Minutes())
	assert.Equal(t, -1, TimeString("bad").Minutes())
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("13:30:00"))
	assert.Equal(t, TimeString("13:30"), ts)

	require.NoError(t, ts.Scan([]byte("08:05:00")))
	assert.Equal(t, TimeString("08:05"), ts)

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 19, 21, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("19:21"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_On(t *testing.T) {
	loc := time.FixedZone("test", 10*60*60)
	date := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)

	got := TimeString("14:45").On(date, loc)

	assert.Equal(t, time.Date(2026, 11, 3, 14, 45, 0, 0, loc), got)
}
