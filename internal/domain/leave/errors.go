package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInactiveEmployee     = errors.New("cannot create leave request for inactive employee")
	ErrInvalidDateRange     = errors.New("end date cannot be before start date")
	ErrOverlappingLeave     = errors.New("employee already has a leave request for overlapping dates")
	ErrAlreadyProcessed     = errors.New("only pending leave requests can be approved or rejected")
)
