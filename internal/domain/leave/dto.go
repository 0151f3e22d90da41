package leave

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !IsValidType(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of SICK, VACATION, PERSONAL, EMERGENCY"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveRequestRequest struct {
	ID        string  `json:"-"`
	LeaveType *string `json:"leave_type"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Reason    *string `json:"reason"`
}

func (r *UpdateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LeaveType != nil && !IsValidType(*r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave_type must be one of SICK, VACATION, PERSONAL, EMERGENCY"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecideRequest carries the approver for approve/reject transitions.
type DecideRequest struct {
	ID         string `json:"-"`
	ApprovedBy string `json:"approved_by"`
}

type LeaveRequestFilter struct {
	EmployeeID   *string
	DepartmentID *string
	LeaveType    *string
	Status       *string
	DateFrom     *time.Time
	DateTo       *time.Time
	Search       *string
	SortBy       string
	SortOrder    string
	Page         int
	Limit        int
}

// LeaveRequestListItem is the compact shape for list views.
type LeaveRequestListItem struct {
	ID               string    `json:"id"`
	EmployeeName     string    `json:"employee_name"`
	LeaveTypeDisplay string    `json:"leave_type_display"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	DurationDays     int       `json:"duration_days"`
	StatusDisplay    string    `json:"status_display"`
	CreatedAt        time.Time `json:"created_at"`
}

// LeaveRequestDetail is the full shape for detail views.
type LeaveRequestDetail struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employee_id"`
	EmployeeName     *string   `json:"employee_name,omitempty"`
	LeaveType        string    `json:"leave_type"`
	LeaveTypeDisplay string    `json:"leave_type_display"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	DurationDays     int       `json:"duration_days"`
	Reason           string    `json:"reason"`
	Status           string    `json:"status"`
	StatusDisplay    string    `json:"status_display"`
	ApprovedBy       string    `json:"approved_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToListItem(l LeaveRequest) LeaveRequestListItem {
	item := LeaveRequestListItem{
		ID:               l.ID,
		LeaveTypeDisplay: TypeLabel(l.LeaveType),
		StartDate:        l.StartDate.Format("2006-01-02"),
		EndDate:          l.EndDate.Format("2006-01-02"),
		DurationDays:     l.DurationDays(),
		StatusDisplay:    StatusLabel(l.Status),
		CreatedAt:        l.CreatedAt,
	}
	if l.EmployeeName != nil {
		item.EmployeeName = *l.EmployeeName
	}
	return item
}

func ToDetail(l LeaveRequest) LeaveRequestDetail {
	return LeaveRequestDetail{
		ID:               l.ID,
		EmployeeID:       l.EmployeeID,
		EmployeeName:     l.EmployeeName,
		LeaveType:        string(l.LeaveType),
		LeaveTypeDisplay: TypeLabel(l.LeaveType),
		StartDate:        l.StartDate.Format("2006-01-02"),
		EndDate:          l.EndDate.Format("2006-01-02"),
		DurationDays:     l.DurationDays(),
		Reason:           l.Reason,
		Status:           string(l.Status),
		StatusDisplay:    StatusLabel(l.Status),
		ApprovedBy:       l.ApprovedBy,
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}
