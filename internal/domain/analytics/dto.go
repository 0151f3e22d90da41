package analytics

import "time"

// ========== ATTENDANCE ANALYTICS ==========

// AttendanceAnalyticsResponse is the reporter output for the attendance
// analytics endpoint.
type AttendanceAnalyticsResponse struct {
	Period                   string           `json:"period"`
	TotalRecords             int64            `json:"total_records"`
	MonthlyOverview          []MonthBreakdown `json:"monthly_overview"`
	AttendanceByStatus       []StatusCount    `json:"attendance_by_status"`
	DepartmentWiseAttendance []DepartmentRate `json:"department_wise_attendance"`
	AverageWorkingHours      float64          `json:"average_working_hours"`
}

// MonthBreakdown is one bucket of the trailing monthly overview. Buckets are
// keyed by (year, month) so two Januaries a year apart never merge; Month
// keeps the display name for chart labels.
type MonthBreakdown struct {
	Year    int    `json:"year"`
	MonthNo int    `json:"month_no"`
	Month   string `json:"month"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
	Late    int64  `json:"late"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DepartmentRate struct {
	Department     string  `json:"department"`
	AttendanceRate float64 `json:"attendance_rate"`
}

// Record is the flattened attendance row the reporter aggregates over:
// status plus the dimensions (date, department) and the check times needed
// for the working-hours average.
type Record struct {
	Date           time.Time
	Status         string
	DepartmentName string
	CheckInTime    *time.Time
	CheckOutTime   *time.Time
}

// ========== EMPLOYEE ANALYTICS ==========

type EmployeeAnalyticsResponse struct {
	TotalEmployees               int64              `json:"total_employees"`
	ActiveEmployees              int64              `json:"active_employees"`
	InactiveEmployees            int64              `json:"inactive_employees"`
	EmployeesByDepartment        []DepartmentCount  `json:"employees_by_department"`
	EmploymentStatusDistribution []StatusCount      `json:"employment_status_distribution"`
	SalaryByDepartment           []DepartmentSalary `json:"salary_by_department"`
	PerformanceSummary           PerformanceSummary `json:"performance_summary"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type DepartmentSalary struct {
	Department    string  `json:"department"`
	AverageSalary float64 `json:"avg_salary"`
}

type PerformanceSummary struct {
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

// ========== COMBINED DASHBOARD ==========

type DashboardResponse struct {
	Attendance        AttendanceAnalyticsResponse `json:"attendance"`
	Employees         EmployeeAnalyticsResponse   `json:"employees"`
	PendingLeaveCount int64                       `json:"pending_leave_count"`
}
