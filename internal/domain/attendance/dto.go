package attendance

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Notes        string  `json:"notes"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !IsValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid attendance status"})
	}
	if r.CheckInTime != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in_time", Message: "check_in_time must be in HH:MM or HH:MM:SS format"})
		}
	}
	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out_time", Message: "check_out_time must be in HH:MM or HH:MM:SS format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID           string  `json:"-"`
	Status       *string `json:"status"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Notes        *string `json:"notes"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !IsValidStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "invalid attendance status"})
	}
	if r.CheckInTime != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_in_time", Message: "check_in_time must be in HH:MM or HH:MM:SS format"})
		}
	}
	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidClockTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "check_out_time", Message: "check_out_time must be in HH:MM or HH:MM:SS format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkCreateRequest struct {
	Records []CreateAttendanceRequest `json:"attendance_records"`
}

// BulkCreateResponse tallies per-record outcomes; invalid records never
// block the valid ones.
type BulkCreateResponse struct {
	CreatedCount int                `json:"created_count"`
	ErrorCount   int                `json:"error_count"`
	Created      []AttendanceDetail `json:"created_records"`
	Errors       []BulkCreateError  `json:"errors,omitempty"`
}

type BulkCreateError struct {
	Record CreateAttendanceRequest `json:"data"`
	Error  string                  `json:"error"`
}

type AttendanceFilter struct {
	EmployeeID   *string
	DepartmentID *string
	Status       *string
	DateFrom     *time.Time
	DateTo       *time.Time
	Month        *int
	Year         *int
	Search       *string
	SortBy       string
	SortOrder    string
	Page         int
	Limit        int
}

// AttendanceListItem is the compact shape for list views.
type AttendanceListItem struct {
	ID            string  `json:"id"`
	EmployeeName  string  `json:"employee_name"`
	Date          string  `json:"date"`
	StatusDisplay string  `json:"status_display"`
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	WorkingHours  float64 `json:"working_hours"`
}

// AttendanceDetail is the full shape for detail views.
type AttendanceDetail struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  *string   `json:"employee_name,omitempty"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
	StatusDisplay string    `json:"status_display"`
	CheckInTime   *string   `json:"check_in_time,omitempty"`
	CheckOutTime  *string   `json:"check_out_time,omitempty"`
	WorkingHours  float64   `json:"working_hours"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Summary is the per-employee aggregation output. Rates and averages carry
// two-decimal presentation rounding; zero is the identity for empty input.
type Summary struct {
	EmployeeName        string  `json:"employee_name"`
	Period              string  `json:"period"`
	TotalDays           int64   `json:"total_days"`
	PresentDays         int64   `json:"present_days"`
	AbsentDays          int64   `json:"absent_days"`
	LateDays            int64   `json:"late_days"`
	AttendanceRate      float64 `json:"attendance_rate"`
	AverageWorkingHours float64 `json:"average_working_hours"`
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

func ToListItem(a Attendance) AttendanceListItem {
	item := AttendanceListItem{
		ID:            a.ID,
		Date:          a.Date.Format("2006-01-02"),
		StatusDisplay: StatusLabel(a.Status),
		CheckInTime:   formatClock(a.CheckInTime),
		CheckOutTime:  formatClock(a.CheckOutTime),
		WorkingHours:  a.WorkingHours(),
	}
	if a.EmployeeName != nil {
		item.EmployeeName = *a.EmployeeName
	}
	return item
}

func ToDetail(a Attendance) AttendanceDetail {
	return AttendanceDetail{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		Date:          a.Date.Format("2006-01-02"),
		Status:        string(a.Status),
		StatusDisplay: StatusLabel(a.Status),
		CheckInTime:   formatClock(a.CheckInTime),
		CheckOutTime:  formatClock(a.CheckOutTime),
		WorkingHours:  a.WorkingHours(),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
