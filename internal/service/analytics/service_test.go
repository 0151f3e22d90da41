package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/analytics"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(hour, minute int) *time.Time {
	t := time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
	return &t
}

func record(date time.Time, status, dept string) analytics.Record {
	return analytics.Record{Date: date, Status: status, DepartmentName: dept}
}

func TestBuildAttendanceReport(t *testing.T) {
	anchor := time.Date(2026, time.February, 15, 0, 0, 0, 0, time.UTC)

	t.Run("monthly overview spans six months keyed by year and month", func(t *testing.T) {
		records := []analytics.Record{
			// January a year before the window; must not merge into the
			// window's January bucket.
			record(time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC), "PRESENT", "Engineering"),
			record(time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC), "PRESENT", "Engineering"),
			record(time.Date(2026, time.January, 11, 0, 0, 0, 0, time.UTC), "LATE", "Engineering"),
			record(time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC), "ABSENT", "Engineering"),
			record(time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC), "PRESENT", "Engineering"),
		}

		report := BuildAttendanceReport(records, anchor)

		require.Len(t, report.MonthlyOverview, 6)
		assert.Equal(t, "September", report.MonthlyOverview[0].Month)
		assert.Equal(t, 2025, report.MonthlyOverview[0].Year)
		assert.Equal(t, "February", report.MonthlyOverview[5].Month)
		assert.Equal(t, 2026, report.MonthlyOverview[5].Year)

		january := report.MonthlyOverview[4]
		assert.Equal(t, 2026, january.Year)
		assert.Equal(t, int64(1), january.Present)
		assert.Equal(t, int64(1), january.Late)

		february := report.MonthlyOverview[5]
		assert.Equal(t, int64(1), february.Absent)

		// Months inside the window with no records still appear, zeroed.
		october := report.MonthlyOverview[1]
		assert.Equal(t, "October", october.Month)
		assert.Equal(t, int64(0), october.Present+october.Absent+october.Late)
	})

	t.Run("status distribution is sorted by count descending", func(t *testing.T) {
		day := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		var records []analytics.Record
		for i := 0; i < 5; i++ {
			records = append(records, record(day, "PRESENT", "Engineering"))
		}
		for i := 0; i < 2; i++ {
			records = append(records, record(day, "ABSENT", "Engineering"))
		}
		records = append(records, record(day, "LATE", "Engineering"))

		report := BuildAttendanceReport(records, anchor)

		require.Len(t, report.AttendanceByStatus, 3)
		assert.Equal(t, analytics.StatusCount{Status: "PRESENT", Count: 5}, report.AttendanceByStatus[0])
		assert.Equal(t, analytics.StatusCount{Status: "ABSENT", Count: 2}, report.AttendanceByStatus[1])
		assert.Equal(t, analytics.StatusCount{Status: "LATE", Count: 1}, report.AttendanceByStatus[2])
	})

	t.Run("department rates count late as present and omit empty departments", func(t *testing.T) {
		day := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		records := []analytics.Record{
			record(day, "PRESENT", "Engineering"),
			record(day, "LATE", "Engineering"),
			record(day, "ABSENT", "Engineering"),
			record(day, "ABSENT", "Sales"),
		}

		report := BuildAttendanceReport(records, anchor)

		require.Len(t, report.DepartmentWiseAttendance, 2)
		assert.Equal(t, "Engineering", report.DepartmentWiseAttendance[0].Department)
		assert.Equal(t, 66.67, report.DepartmentWiseAttendance[0].AttendanceRate)
		assert.Equal(t, "Sales", report.DepartmentWiseAttendance[1].Department)
		assert.Equal(t, 0.0, report.DepartmentWiseAttendance[1].AttendanceRate)
	})

	t.Run("average working hours spans only records with durations", func(t *testing.T) {
		day := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
		records := []analytics.Record{
			{Date: day, Status: "PRESENT", DepartmentName: "Engineering", CheckInTime: clock(9, 0), CheckOutTime: clock(17, 0)},
			{Date: day, Status: "PRESENT", DepartmentName: "Engineering", CheckInTime: clock(22, 0), CheckOutTime: clock(6, 0)},
			{Date: day, Status: "ABSENT", DepartmentName: "Engineering"},
		}

		report := BuildAttendanceReport(records, anchor)
		assert.Equal(t, 8.0, report.AverageWorkingHours)
	})

	t.Run("empty input yields an empty report with seeded months", func(t *testing.T) {
		report := BuildAttendanceReport(nil, anchor)

		assert.Equal(t, int64(0), report.TotalRecords)
		assert.Len(t, report.MonthlyOverview, 6)
		assert.Empty(t, report.AttendanceByStatus)
		assert.Empty(t, report.DepartmentWiseAttendance)
		assert.Equal(t, 0.0, report.AverageWorkingHours)
	})
}

type fakeAnalyticsRepo struct {
	records []analytics.Record
}

func (f *fakeAnalyticsRepo) ListAttendanceRecords(ctx context.Context, month, year *int) ([]analytics.Record, error) {
	return f.records, nil
}

func (f *fakeAnalyticsRepo) GetEmployeeStats(ctx context.Context) (analytics.EmployeeStats, error) {
	return analytics.EmployeeStats{Total: 10, Active: 8}, nil
}

func (f *fakeAnalyticsRepo) ListDepartmentHeadcounts(ctx context.Context) ([]analytics.DepartmentCount, error) {
	return []analytics.DepartmentCount{{Department: "Engineering", Count: 8}}, nil
}

func (f *fakeAnalyticsRepo) ListEmploymentStatusCounts(ctx context.Context) ([]analytics.StatusCount, error) {
	return []analytics.StatusCount{{Status: "ACTIVE", Count: 8}, {Status: "TERMINATED", Count: 2}}, nil
}

func (f *fakeAnalyticsRepo) ListDepartmentSalaries(ctx context.Context) ([]analytics.DepartmentSalary, error) {
	return []analytics.DepartmentSalary{{Department: "Engineering", AverageSalary: 85000.50}}, nil
}

func (f *fakeAnalyticsRepo) GetPerformanceSummary(ctx context.Context) (analytics.PerformanceSummary, error) {
	return analytics.PerformanceSummary{TotalReviews: 12, AverageRating: 4.25}, nil
}

type stubLeaveCounter struct {
	leave.LeaveRequestRepository
	pending int64
}

func (s stubLeaveCounter) CountByStatus(ctx context.Context, status leave.Status) (int64, error) {
	return s.pending, nil
}

func TestEmployeeAnalytics(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, stubLeaveCounter{})

	resp, err := svc.EmployeeAnalytics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.TotalEmployees)
	assert.Equal(t, int64(8), resp.ActiveEmployees)
	assert.Equal(t, int64(2), resp.InactiveEmployees)
	assert.Equal(t, int64(12), resp.PerformanceSummary.TotalReviews)
}

func TestDashboard(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, stubLeaveCounter{pending: 3})

	resp, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.PendingLeaveCount)
	assert.Equal(t, int64(10), resp.Employees.TotalEmployees)
	assert.Len(t, resp.Attendance.MonthlyOverview, 6)
}

func TestAttendanceAnalyticsPeriod(t *testing.T) {
	svc := NewAnalyticsService(&fakeAnalyticsRepo{}, stubLeaveCounter{})

	month := 3
	year := 2026
	resp, err := svc.AttendanceAnalytics(context.Background(), &month, &year)
	require.NoError(t, err)

	assert.Equal(t, "March 2026", resp.Period)
	assert.Equal(t, "March", resp.MonthlyOverview[5].Month)
	assert.Equal(t, "October", resp.MonthlyOverview[0].Month)
	assert.Equal(t, 2025, resp.MonthlyOverview[0].Year)
}
