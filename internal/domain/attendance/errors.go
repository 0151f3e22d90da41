package attendance

import "errors"

// Attendance domain errors
var (
	// Validation errors
	ErrInactiveEmployee  = errors.New("cannot record attendance for inactive employee")
	ErrExcessiveDuration = errors.New("working hours cannot exceed 16 hours per day")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateRecord    = errors.New("attendance record already exists for this employee and date")
)
