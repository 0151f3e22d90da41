package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	leaveRepo      leave.LeaveRequestRepository
}

func NewAttendanceJobs(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRequestRepository,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		leaveRepo:      leaveRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills an ABSENT record for every active employee
// who has no attendance record for yesterday. Weekends and days covered by
// an approved leave request are skipped.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	yesterday = time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 0, 0, 0, 0, time.UTC)

	if wd := yesterday.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return nil
	}

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active employees: %w", err)
	}

	markedCount := 0
	for _, emp := range employees {
		if emp.HireDate.After(yesterday) {
			continue
		}

		existing, err := j.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to check attendance", "employee_id", emp.ID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}

		onLeave, err := j.leaveRepo.HasApprovedLeaveOn(ctx, emp.ID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to check leave", "employee_id", emp.ID, "error", err)
			continue
		}
		if onLeave {
			continue
		}

		record := attendance.Attendance{
			EmployeeID: emp.ID,
			Date:       yesterday,
			Status:     attendance.StatusAbsent,
			Notes:      "Automatically marked absent",
		}
		if _, err := j.attendanceRepo.Create(ctx, record); err != nil {
			// Someone else may have written the record in the meantime.
			if errors.Is(err, attendance.ErrDuplicateRecord) {
				continue
			}
			slog.Error("Cron: Failed to mark absent",
				"employee_id", emp.ID,
				"date", yesterday.Format("2006-01-02"),
				"error", err)
			continue
		}

		markedCount++
	}

	slog.Info("Cron: Marked absent employees", "count", markedCount)
	return nil
}
