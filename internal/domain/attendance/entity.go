package attendance

import "time"

// Attendance entity. One record per employee per calendar date; the
// (employee_id, date) pair is unique in storage.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Status       Status
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships (for responses)
	EmployeeName   *string
	DepartmentName *string
}

// WorkingHours recomputes the worked duration from the stored check-in and
// check-out times. Never persisted.
func (a Attendance) WorkingHours() float64 {
	return WorkingHours(a.CheckInTime, a.CheckOutTime)
}

// WorkingHours returns elapsed hours between two clock times. A check-out
// whose clock time is earlier than the check-in is treated as falling on the
// following day (overnight shift). Returns 0 when either time is missing.
func WorkingHours(checkIn, checkOut *time.Time) float64 {
	if checkIn == nil || checkOut == nil {
		return 0
	}

	in := secondsOfDay(*checkIn)
	out := secondsOfDay(*checkOut)
	if out < in {
		out += 24 * 3600
	}
	return float64(out-in) / 3600
}

func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

type Status string

const (
	StatusPresent   Status = "PRESENT"
	StatusAbsent    Status = "ABSENT"
	StatusLate      Status = "LATE"
	StatusHalfDay   Status = "HALF_DAY"
	StatusSickLeave Status = "SICK_LEAVE"
	StatusVacation  Status = "VACATION"
	StatusHoliday   Status = "HOLIDAY"
)

// Statuses lists every valid attendance status.
var Statuses = []Status{
	StatusPresent,
	StatusAbsent,
	StatusLate,
	StatusHalfDay,
	StatusSickLeave,
	StatusVacation,
	StatusHoliday,
}

// StatusLabel maps a status to its display name.
func StatusLabel(s Status) string {
	switch s {
	case StatusPresent:
		return "Present"
	case StatusAbsent:
		return "Absent"
	case StatusLate:
		return "Late"
	case StatusHalfDay:
		return "Half Day"
	case StatusSickLeave:
		return "Sick Leave"
	case StatusVacation:
		return "Vacation"
	case StatusHoliday:
		return "Holiday"
	}
	return string(s)
}

// IsValidStatus reports whether s is one of the known statuses.
func IsValidStatus(s string) bool {
	for _, status := range Statuses {
		if s == string(status) {
			return true
		}
	}
	return false
}
