package attendance

import "context"

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Create validates the candidate record and persists it. Validation
	// never mutates the stored times; the overnight rule only affects the
	// computed duration.
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceDetail, error)

	// BulkCreate validates and persists a batch, collecting per-record
	// failures instead of aborting the batch.
	BulkCreate(ctx context.Context, req BulkCreateRequest) (BulkCreateResponse, error)

	Get(ctx context.Context, id string) (AttendanceDetail, error)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceListItem, int64, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceDetail, error)
	Delete(ctx context.Context, id string) error

	// Summary aggregates an employee's records, optionally narrowed to a
	// month and/or year.
	Summary(ctx context.Context, employeeID string, month, year *int) (Summary, error)
}
