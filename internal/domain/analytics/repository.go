package analytics

import "context"

// AnalyticsRepository fetches the raw rows the reporter aggregates in
// memory. Aggregation itself is pure and lives in the service.
type AnalyticsRepository interface {
	// ListAttendanceRecords returns attendance rows joined with their
	// department, optionally narrowed to a month and/or year.
	ListAttendanceRecords(ctx context.Context, month, year *int) ([]Record, error)

	GetEmployeeStats(ctx context.Context) (EmployeeStats, error)
	ListDepartmentHeadcounts(ctx context.Context) ([]DepartmentCount, error)
	ListEmploymentStatusCounts(ctx context.Context) ([]StatusCount, error)
	ListDepartmentSalaries(ctx context.Context) ([]DepartmentSalary, error)
	GetPerformanceSummary(ctx context.Context) (PerformanceSummary, error)
}

// EmployeeStats carries the headline employee counts in a single query.
type EmployeeStats struct {
	Total  int64
	Active int64
}

type AnalyticsService interface {
	AttendanceAnalytics(ctx context.Context, month, year *int) (AttendanceAnalyticsResponse, error)
	EmployeeAnalytics(ctx context.Context) (EmployeeAnalyticsResponse, error)
	Dashboard(ctx context.Context) (DashboardResponse, error)
}
