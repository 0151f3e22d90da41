package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
)

// maxDailyHours caps a single day's computed working duration.
const maxDailyHours = 16.0

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceDetail, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceDetail{}, err
	}

	record, err := s.buildRecord(req)
	if err != nil {
		return attendance.AttendanceDetail{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceDetail{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceDetail{}, attendance.ErrInactiveEmployee
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceDetail{}, err
	}

	name := emp.FullName()
	created.EmployeeName = &name
	return attendance.ToDetail(created), nil
}

// buildRecord parses the request and enforces the duration ceiling. The
// stored times are kept exactly as submitted; the overnight rollover only
// affects the computed duration.
func (s *AttendanceServiceImpl) buildRecord(req attendance.CreateAttendanceRequest) (attendance.Attendance, error) {
	date, _ := time.Parse("2006-01-02", req.Date)

	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		Notes:      req.Notes,
	}
	if req.CheckInTime != nil {
		t := parseClock(*req.CheckInTime)
		record.CheckInTime = &t
	}
	if req.CheckOutTime != nil {
		t := parseClock(*req.CheckOutTime)
		record.CheckOutTime = &t
	}

	if record.WorkingHours() > maxDailyHours {
		return attendance.Attendance{}, attendance.ErrExcessiveDuration
	}

	return record, nil
}

func parseClock(s string) time.Time {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, _ = time.Parse("15:04", s)
	}
	return t
}

func (s *AttendanceServiceImpl) BulkCreate(ctx context.Context, req attendance.BulkCreateRequest) (attendance.BulkCreateResponse, error) {
	response := attendance.BulkCreateResponse{
		Created: make([]attendance.AttendanceDetail, 0, len(req.Records)),
	}

	for _, record := range req.Records {
		detail, err := s.Create(ctx, record)
		if err != nil {
			response.ErrorCount++
			response.Errors = append(response.Errors, attendance.BulkCreateError{
				Record: record,
				Error:  err.Error(),
			})
			continue
		}
		response.CreatedCount++
		response.Created = append(response.Created, detail)
	}

	return response, nil
}

func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceDetail, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceDetail{}, err
	}
	return attendance.ToDetail(record), nil
}

func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceListItem, int64, error) {
	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}

	items := make([]attendance.AttendanceListItem, 0, len(records))
	for _, record := range records {
		items = append(items, attendance.ToListItem(record))
	}

	return items, total, nil
}

func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceDetail, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceDetail{}, err
	}

	record, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceDetail{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, record.EmployeeID)
	if err != nil {
		return attendance.AttendanceDetail{}, err
	}
	if !emp.IsActive {
		return attendance.AttendanceDetail{}, attendance.ErrInactiveEmployee
	}

	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.CheckInTime != nil {
		t := parseClock(*req.CheckInTime)
		record.CheckInTime = &t
	}
	if req.CheckOutTime != nil {
		t := parseClock(*req.CheckOutTime)
		record.CheckOutTime = &t
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	if record.WorkingHours() > maxDailyHours {
		return attendance.AttendanceDetail{}, attendance.ErrExcessiveDuration
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceDetail{}, err
	}

	return s.Get(ctx, record.ID)
}

func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) Summary(ctx context.Context, employeeID string, month, year *int) (attendance.Summary, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.Summary{}, err
	}

	records, err := s.attendanceRepo.ListForEmployee(ctx, employeeID, month, year)
	if err != nil {
		return attendance.Summary{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	summary := Aggregate(records)
	summary.EmployeeName = emp.FullName()
	summary.Period = summaryPeriod(month, year)

	return summary, nil
}

// Aggregate computes the headline attendance stats over a record set.
// PRESENT and LATE both count toward presence; the average only spans
// records that produced a non-zero duration. Empty input yields all zeros.
func Aggregate(records []attendance.Attendance) attendance.Summary {
	summary := attendance.Summary{
		TotalDays: int64(len(records)),
	}

	var hoursSum float64
	var hoursCount int64
	for _, record := range records {
		switch record.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusLate:
			summary.PresentDays++
			summary.LateDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		}

		if h := record.WorkingHours(); h > 0 {
			hoursSum += h
			hoursCount++
		}
	}

	if summary.TotalDays > 0 {
		summary.AttendanceRate = round2(float64(summary.PresentDays) / float64(summary.TotalDays) * 100)
	}
	if hoursCount > 0 {
		summary.AverageWorkingHours = round2(hoursSum / float64(hoursCount))
	}

	return summary
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
