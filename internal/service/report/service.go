package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/analytics"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/export"
)

// ReportService renders the analytics reports as downloadable documents.
type ReportService interface {
	AttendanceReportXLSX(ctx context.Context, month, year *int) (*bytes.Buffer, string, error)
	AttendanceReportPDF(ctx context.Context, month, year *int) (*bytes.Buffer, string, error)
	EmployeeDirectoryXLSX(ctx context.Context) (*bytes.Buffer, string, error)
}

type ReportServiceImpl struct {
	analyticsService analytics.AnalyticsService
	employeeRepo     employee.EmployeeRepository
}

func NewReportService(
	analyticsService analytics.AnalyticsService,
	employeeRepo employee.EmployeeRepository,
) ReportService {
	return &ReportServiceImpl{
		analyticsService: analyticsService,
		employeeRepo:     employeeRepo,
	}
}

func (s *ReportServiceImpl) AttendanceReportXLSX(ctx context.Context, month, year *int) (*bytes.Buffer, string, error) {
	report, err := s.analyticsService.AttendanceAnalytics(ctx, month, year)
	if err != nil {
		return nil, "", err
	}

	builder := export.NewExcelBuilder("Attendance Report")

	if err := builder.WriteHeader([]string{"Period", "Total Records", "Average Working Hours"}); err != nil {
		return nil, "", err
	}
	if err := builder.WriteRow([]interface{}{report.Period, report.TotalRecords, report.AverageWorkingHours}); err != nil {
		return nil, "", err
	}
	builder.SkipRow()

	if err := builder.WriteHeader([]string{"Year", "Month", "Present", "Absent", "Late"}); err != nil {
		return nil, "", err
	}
	for _, bucket := range report.MonthlyOverview {
		if err := builder.WriteRow([]interface{}{bucket.Year, bucket.Month, bucket.Present, bucket.Absent, bucket.Late}); err != nil {
			return nil, "", err
		}
	}
	builder.SkipRow()

	if err := builder.WriteHeader([]string{"Status", "Count"}); err != nil {
		return nil, "", err
	}
	for _, status := range report.AttendanceByStatus {
		if err := builder.WriteRow([]interface{}{status.Status, status.Count}); err != nil {
			return nil, "", err
		}
	}
	builder.SkipRow()

	if err := builder.WriteHeader([]string{"Department", "Attendance Rate (%)"}); err != nil {
		return nil, "", err
	}
	for _, dept := range report.DepartmentWiseAttendance {
		if err := builder.WriteRow([]interface{}{dept.Department, dept.AttendanceRate}); err != nil {
			return nil, "", err
		}
	}

	buf, err := builder.Buffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build workbook: %w", err)
	}

	return buf, reportFilename("attendance_report", "xlsx"), nil
}

func (s *ReportServiceImpl) AttendanceReportPDF(ctx context.Context, month, year *int) (*bytes.Buffer, string, error) {
	report, err := s.analyticsService.AttendanceAnalytics(ctx, month, year)
	if err != nil {
		return nil, "", err
	}

	builder := export.NewPDFBuilder(fmt.Sprintf("Attendance Report - %s", report.Period))

	builder.WriteSection("Monthly Overview")
	builder.WriteHeader([]string{"Year", "Month", "Present", "Absent", "Late"}, []float64{25, 45, 35, 35, 35})
	for _, bucket := range report.MonthlyOverview {
		builder.WriteRow([]string{
			fmt.Sprintf("%d", bucket.Year),
			bucket.Month,
			fmt.Sprintf("%d", bucket.Present),
			fmt.Sprintf("%d", bucket.Absent),
			fmt.Sprintf("%d", bucket.Late),
		})
	}

	builder.WriteSection("Status Distribution")
	builder.WriteHeader([]string{"Status", "Count"}, []float64{90, 85})
	for _, status := range report.AttendanceByStatus {
		builder.WriteRow([]string{status.Status, fmt.Sprintf("%d", status.Count)})
	}

	builder.WriteSection("Department Attendance Rates")
	builder.WriteHeader([]string{"Department", "Attendance Rate (%)"}, []float64{90, 85})
	for _, dept := range report.DepartmentWiseAttendance {
		builder.WriteRow([]string{dept.Department, fmt.Sprintf("%.2f", dept.AttendanceRate)})
	}

	buf, err := builder.Buffer()
	if err != nil {
		return nil, "", err
	}

	return buf, reportFilename("attendance_report", "pdf"), nil
}

func (s *ReportServiceImpl) EmployeeDirectoryXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list employees: %w", err)
	}

	builder := export.NewExcelBuilder("Employees")

	headers := []string{"Employee Code", "Full Name", "Email", "Phone", "Department", "Position", "Hire Date", "Status"}
	if err := builder.WriteHeader(headers); err != nil {
		return nil, "", err
	}

	for _, emp := range employees {
		departmentName := ""
		if emp.DepartmentName != nil {
			departmentName = *emp.DepartmentName
		}
		row := []interface{}{
			emp.EmployeeCode,
			emp.FullName(),
			emp.Email,
			emp.PhoneNumber,
			departmentName,
			emp.Position,
			emp.HireDate.Format("2006-01-02"),
			string(emp.EmploymentStatus),
		}
		if err := builder.WriteRow(row); err != nil {
			return nil, "", err
		}
	}

	buf, err := builder.Buffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build workbook: %w", err)
	}

	return buf, reportFilename("employee_directory", "xlsx"), nil
}

func reportFilename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102"), ext)
}
