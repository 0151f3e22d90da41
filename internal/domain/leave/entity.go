package leave

import "time"

// LeaveRequest entity. For a given employee, no two requests with status
// PENDING or APPROVED may have overlapping [start, end] ranges.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ApprovedBy string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relationships (for responses)
	EmployeeName *string
}

// DurationDays returns the inclusive length of the leave in days.
// A single-day leave (start == end) is 1 day.
func (l LeaveRequest) DurationDays() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

type Type string

const (
	TypeSick      Type = "SICK"
	TypeVacation  Type = "VACATION"
	TypePersonal  Type = "PERSONAL"
	TypeEmergency Type = "EMERGENCY"
)

// TypeLabel maps a leave type to its display name.
func TypeLabel(t Type) string {
	switch t {
	case TypeSick:
		return "Sick Leave"
	case TypeVacation:
		return "Vacation"
	case TypePersonal:
		return "Personal Leave"
	case TypeEmergency:
		return "Emergency Leave"
	}
	return string(t)
}

// IsValidType reports whether t is one of the known leave types.
func IsValidType(t string) bool {
	switch Type(t) {
	case TypeSick, TypeVacation, TypePersonal, TypeEmergency:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// StatusLabel maps a status to its display name.
func StatusLabel(s Status) string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

// Blocks reports whether a request in this status excludes new overlapping
// requests. Terminal REJECTED requests never block.
func (s Status) Blocks() bool {
	return s == StatusPending || s == StatusApproved
}
