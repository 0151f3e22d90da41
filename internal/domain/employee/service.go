package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeDetail, error)
	Get(ctx context.Context, id string) (EmployeeDetail, error)
	List(ctx context.Context, filter EmployeeFilter) ([]EmployeeListItem, int64, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeDetail, error)
	Delete(ctx context.Context, id string) error

	Activate(ctx context.Context, id string) (EmployeeDetail, error)
	Deactivate(ctx context.Context, id string) (EmployeeDetail, error)

	// Profile returns the employee detail together with recent performance
	// reviews and attendance headline stats.
	Profile(ctx context.Context, id string) (EmployeeProfile, error)
}

// EmployeeProfile composes the employee detail with review history and
// attendance stats for the profile endpoint.
type EmployeeProfile struct {
	Employee           EmployeeDetail     `json:"employee"`
	RecentPerformances []PerformanceItem  `json:"recent_performances"`
	AttendanceStats    AttendanceHeadline `json:"attendance_stats"`
}

// PerformanceItem mirrors performance.ReviewResponse without importing the
// package (avoids a domain-to-domain cycle).
type PerformanceItem struct {
	ID         string `json:"id"`
	Rating     int    `json:"rating"`
	ReviewDate string `json:"review_date"`
	Reviewer   string `json:"reviewer"`
	Comments   string `json:"comments,omitempty"`
}

type AttendanceHeadline struct {
	TotalDays      int64   `json:"total_days"`
	PresentDays    int64   `json:"present_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}
