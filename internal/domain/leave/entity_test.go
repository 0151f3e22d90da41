package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDurationDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(2025, 3, 1), day(2025, 3, 1), 1},
		{"work week", day(2025, 3, 3), day(2025, 3, 7), 5},
		{"across month boundary", day(2025, 3, 30), day(2025, 4, 2), 4},
		{"across year boundary", day(2025, 12, 30), day(2026, 1, 2), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LeaveRequest{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, l.DurationDays())
		})
	}
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, StatusPending.Blocks())
	assert.True(t, StatusApproved.Blocks())
	assert.False(t, StatusRejected.Blocks())
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "Sick Leave", TypeLabel(TypeSick))
	assert.Equal(t, "Emergency Leave", TypeLabel(TypeEmergency))
}
