package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, minute, second int) *time.Time {
	t := time.Date(0, 1, 1, hour, minute, second, 0, time.UTC)
	return &t
}

func TestWorkingHours(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		want     float64
	}{
		{"standard day", at(9, 0, 0), at(17, 30, 0), 8.5},
		{"overnight shift", at(22, 0, 0), at(6, 0, 0), 8},
		{"late overnight", at(23, 30, 0), at(0, 15, 0), 0.75},
		{"same instant", at(9, 0, 0), at(9, 0, 0), 0},
		{"seconds count", at(9, 0, 30), at(9, 1, 0), 0.5 / 60},
		{"missing check-in", nil, at(17, 0, 0), 0},
		{"missing check-out", at(9, 0, 0), nil, 0},
		{"both missing", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WorkingHours(tt.checkIn, tt.checkOut), 1e-9)
		})
	}
}

func TestWorkingHoursIgnoresDateComponent(t *testing.T) {
	// Only the clock time matters; callers store bare times parsed without
	// a date.
	in := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	out := time.Date(1999, 7, 4, 17, 0, 0, 0, time.UTC)
	assert.Equal(t, 8.0, WorkingHours(&in, &out))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Present", StatusLabel(StatusPresent))
	assert.Equal(t, "Half Day", StatusLabel(StatusHalfDay))
	assert.Equal(t, "UNKNOWN", StatusLabel(Status("UNKNOWN")))
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range Statuses {
		assert.True(t, IsValidStatus(string(status)))
	}
	assert.False(t, IsValidStatus("present"))
	assert.False(t, IsValidStatus(""))
}
