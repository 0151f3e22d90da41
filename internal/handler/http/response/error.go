package response

import (
	"errors"
	"net/http"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/auth"
	"github.com/emsuite/ems-backend-go/internal/domain/department"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/domain/performance"
	"github.com/emsuite/ems-backend-go/internal/domain/user"
	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrHasActiveEmployees):
		Conflict(w, "Department has active employees")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrInactiveEmployee):
		BadRequest(w, "Employee is not active", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateRecord):
		Conflict(w, "Attendance record already exists for this employee and date")
	case errors.Is(err, attendance.ErrInactiveEmployee):
		BadRequest(w, "Cannot record attendance for inactive employee", nil)
	case errors.Is(err, attendance.ErrExcessiveDuration):
		BadRequest(w, "Working hours cannot exceed 16 hours per day", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInactiveEmployee):
		BadRequest(w, "Cannot create leave request for inactive employee", nil)
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date cannot be before start date", nil)
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Employee already has a leave request for overlapping dates")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Performance domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")
	case errors.Is(err, performance.ErrDuplicateReview):
		Conflict(w, "Employee already has a review for this date")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
