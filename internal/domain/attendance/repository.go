package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The
// storage layer owns the (employee_id, date) uniqueness invariant: Create
// returns ErrDuplicateRecord when the pair already exists, regardless of any
// pre-check the caller performed.
type AttendanceRepository interface {
	Create(ctx context.Context, record Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// ListForEmployee returns the full filtered record set without
	// pagination, for aggregation.
	ListForEmployee(ctx context.Context, employeeID string, month, year *int) ([]Attendance, error)

	Update(ctx context.Context, record Attendance) error
	Delete(ctx context.Context, id string) error
}
