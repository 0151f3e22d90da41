package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/analytics"
	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"golang.org/x/sync/errgroup"
)

// overviewMonths is the span of the trailing monthly overview.
const overviewMonths = 6

type AnalyticsServiceImpl struct {
	analyticsRepo analytics.AnalyticsRepository
	leaveRepo     leave.LeaveRequestRepository
}

func NewAnalyticsService(
	analyticsRepo analytics.AnalyticsRepository,
	leaveRepo leave.LeaveRequestRepository,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		analyticsRepo: analyticsRepo,
		leaveRepo:     leaveRepo,
	}
}

func (s *AnalyticsServiceImpl) AttendanceAnalytics(ctx context.Context, month, year *int) (analytics.AttendanceAnalyticsResponse, error) {
	records, err := s.analyticsRepo.ListAttendanceRecords(ctx, month, year)
	if err != nil {
		return analytics.AttendanceAnalyticsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	anchor := time.Now()
	if month != nil && year != nil {
		anchor = time.Date(*year, time.Month(*month), 1, 0, 0, 0, 0, time.UTC)
	}

	response := BuildAttendanceReport(records, anchor)
	response.Period = summaryPeriod(month, year)
	return response, nil
}

// BuildAttendanceReport aggregates flattened attendance rows into the
// analytics response. The monthly overview spans the trailing six calendar
// months ending at anchor's month; months without records appear with zero
// counts. Buckets are keyed by (year, month), never by month name alone.
func BuildAttendanceReport(records []analytics.Record, anchor time.Time) analytics.AttendanceAnalyticsResponse {
	response := analytics.AttendanceAnalyticsResponse{
		TotalRecords: int64(len(records)),
	}

	type monthKey struct {
		year  int
		month time.Month
	}

	// Seed the trailing window so empty months still appear.
	buckets := make(map[monthKey]*analytics.MonthBreakdown, overviewMonths)
	anchorMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := overviewMonths - 1; i >= 0; i-- {
		m := anchorMonth.AddDate(0, -i, 0)
		buckets[monthKey{year: m.Year(), month: m.Month()}] = &analytics.MonthBreakdown{
			Year:    m.Year(),
			MonthNo: int(m.Month()),
			Month:   m.Month().String(),
		}
	}

	statusCounts := make(map[string]int64)
	type deptTally struct {
		present int64
		total   int64
	}
	deptTallies := make(map[string]*deptTally)

	var hoursSum float64
	var hoursCount int64

	for _, record := range records {
		statusCounts[record.Status]++

		tally := deptTallies[record.DepartmentName]
		if tally == nil {
			tally = &deptTally{}
			deptTallies[record.DepartmentName] = tally
		}
		tally.total++
		if record.Status == string(attendance.StatusPresent) || record.Status == string(attendance.StatusLate) {
			tally.present++
		}

		if h := attendance.WorkingHours(record.CheckInTime, record.CheckOutTime); h > 0 {
			hoursSum += h
			hoursCount++
		}

		key := monthKey{year: record.Date.Year(), month: record.Date.Month()}
		if bucket, ok := buckets[key]; ok {
			switch record.Status {
			case string(attendance.StatusPresent):
				bucket.Present++
			case string(attendance.StatusAbsent):
				bucket.Absent++
			case string(attendance.StatusLate):
				bucket.Late++
			}
		}
	}

	// Emit the window chronologically.
	for i := overviewMonths - 1; i >= 0; i-- {
		m := anchorMonth.AddDate(0, -i, 0)
		bucket := buckets[monthKey{year: m.Year(), month: m.Month()}]
		response.MonthlyOverview = append(response.MonthlyOverview, *bucket)
	}

	for status, count := range statusCounts {
		response.AttendanceByStatus = append(response.AttendanceByStatus, analytics.StatusCount{
			Status: status,
			Count:  count,
		})
	}
	sort.Slice(response.AttendanceByStatus, func(i, j int) bool {
		a, b := response.AttendanceByStatus[i], response.AttendanceByStatus[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Status < b.Status
	})

	// Departments with no records are omitted rather than reported as 0%.
	for dept, tally := range deptTallies {
		response.DepartmentWiseAttendance = append(response.DepartmentWiseAttendance, analytics.DepartmentRate{
			Department:     dept,
			AttendanceRate: round2(float64(tally.present) / float64(tally.total) * 100),
		})
	}
	sort.Slice(response.DepartmentWiseAttendance, func(i, j int) bool {
		return response.DepartmentWiseAttendance[i].Department < response.DepartmentWiseAttendance[j].Department
	})

	if hoursCount > 0 {
		response.AverageWorkingHours = round2(hoursSum / float64(hoursCount))
	}

	return response
}

func (s *AnalyticsServiceImpl) EmployeeAnalytics(ctx context.Context) (analytics.EmployeeAnalyticsResponse, error) {
	stats, err := s.analyticsRepo.GetEmployeeStats(ctx)
	if err != nil {
		return analytics.EmployeeAnalyticsResponse{}, fmt.Errorf("failed to get employee stats: %w", err)
	}

	headcounts, err := s.analyticsRepo.ListDepartmentHeadcounts(ctx)
	if err != nil {
		return analytics.EmployeeAnalyticsResponse{}, fmt.Errorf("failed to list department headcounts: %w", err)
	}

	statusCounts, err := s.analyticsRepo.ListEmploymentStatusCounts(ctx)
	if err != nil {
		return analytics.EmployeeAnalyticsResponse{}, fmt.Errorf("failed to list employment status counts: %w", err)
	}

	salaries, err := s.analyticsRepo.ListDepartmentSalaries(ctx)
	if err != nil {
		return analytics.EmployeeAnalyticsResponse{}, fmt.Errorf("failed to list department salaries: %w", err)
	}

	performanceSummary, err := s.analyticsRepo.GetPerformanceSummary(ctx)
	if err != nil {
		return analytics.EmployeeAnalyticsResponse{}, fmt.Errorf("failed to get performance summary: %w", err)
	}

	return analytics.EmployeeAnalyticsResponse{
		TotalEmployees:               stats.Total,
		ActiveEmployees:              stats.Active,
		InactiveEmployees:            stats.Total - stats.Active,
		EmployeesByDepartment:        headcounts,
		EmploymentStatusDistribution: statusCounts,
		SalaryByDepartment:           salaries,
		PerformanceSummary:           performanceSummary,
	}, nil
}

// Dashboard fans the three report queries out in parallel.
func (s *AnalyticsServiceImpl) Dashboard(ctx context.Context) (analytics.DashboardResponse, error) {
	var response analytics.DashboardResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		attendanceReport, err := s.AttendanceAnalytics(gCtx, nil, nil)
		if err != nil {
			return err
		}
		response.Attendance = attendanceReport
		return nil
	})

	g.Go(func() error {
		employeeReport, err := s.EmployeeAnalytics(gCtx)
		if err != nil {
			return err
		}
		response.Employees = employeeReport
		return nil
	})

	g.Go(func() error {
		pending, err := s.leaveRepo.CountByStatus(gCtx, leave.StatusPending)
		if err != nil {
			return fmt.Errorf("failed to count pending leave requests: %w", err)
		}
		response.PendingLeaveCount = pending
		return nil
	})

	if err := g.Wait(); err != nil {
		return analytics.DashboardResponse{}, err
	}

	return response, nil
}

func summaryPeriod(month, year *int) string {
	switch {
	case month != nil && year != nil:
		return fmt.Sprintf("%s %d", time.Month(*month), *year)
	case month != nil:
		return time.Month(*month).String()
	case year != nil:
		return fmt.Sprintf("%d", *year)
	}
	return "All time"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
