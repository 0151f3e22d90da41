package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	Update(ctx context.Context, request LeaveRequest) error
	UpdateStatus(ctx context.Context, id string, status Status, approvedBy string) error
	Delete(ctx context.Context, id string) error

	// CheckOverlapping reports whether the employee has any PENDING or
	// APPROVED request whose inclusive [start, end] range intersects the
	// candidate range. excludeID skips the request being updated; pass ""
	// on create.
	CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID string) (bool, error)

	// HasApprovedLeaveOn reports whether the employee has an APPROVED
	// request whose range covers the given date.
	HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error)

	CountByStatus(ctx context.Context, status Status) (int64, error)
}

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestDetail, error)
	Get(ctx context.Context, id string) (LeaveRequestDetail, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestListItem, int64, error)
	Update(ctx context.Context, req UpdateLeaveRequestRequest) (LeaveRequestDetail, error)
	Delete(ctx context.Context, id string) error

	// Approve transitions PENDING -> APPROVED; any other starting status
	// fails with ErrAlreadyProcessed.
	Approve(ctx context.Context, req DecideRequest) (LeaveRequestDetail, error)

	// Reject transitions PENDING -> REJECTED.
	Reject(ctx context.Context, req DecideRequest) (LeaveRequestDetail, error)
}
