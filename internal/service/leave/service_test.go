package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTxManager runs the function directly; the overlap semantics under test
// do not depend on transaction isolation.
type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.nextID++
	request.ID = fmt.Sprintf("leave-%d", f.nextID)
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	var requests []leave.LeaveRequest
	for _, request := range f.requests {
		requests = append(requests, request)
	}
	return requests, int64(len(requests)), nil
}

func (f *fakeLeaveRepo) Update(ctx context.Context, request leave.LeaveRequest) error {
	if _, ok := f.requests[request.ID]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	f.requests[request.ID] = request
	return nil
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy string) error {
	request, ok := f.requests[id]
	if !ok || request.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}
	request.Status = status
	request.ApprovedBy = approvedBy
	f.requests[id] = request
	return nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.requests[id]; !ok {
		return leave.ErrLeaveRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

func (f *fakeLeaveRepo) CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID string) (bool, error) {
	for _, request := range f.requests {
		if request.EmployeeID != employeeID || request.ID == excludeID {
			continue
		}
		if !request.Status.Blocks() {
			continue
		}
		// Inclusive ranges intersect when neither is wholly before the other.
		if !request.StartDate.After(endDate) && !request.EndDate.Before(startDate) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	for _, request := range f.requests {
		if request.EmployeeID != employeeID || request.Status != leave.StatusApproved {
			continue
		}
		if !request.StartDate.After(date) && !request.EndDate.Before(date) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeLeaveRepo) CountByStatus(ctx context.Context, status leave.Status) (int64, error) {
	var count int64
	for _, request := range f.requests {
		if request.Status == status {
			count++
		}
	}
	return count, nil
}

type fakeEmployeeGetter struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeGetter(ids ...string) *fakeEmployeeGetter {
	f := &fakeEmployeeGetter{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		f.employees[id] = employee.Employee{
			ID:        id,
			FirstName: "Jane",
			LastName:  "Doe",
			IsActive:  true,
		}
	}
	return f
}

func (f *fakeEmployeeGetter) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeGetter) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeGetter) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeGetter) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeGetter) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeGetter) Update(ctx context.Context, emp employee.Employee) error {
	return nil
}

func (f *fakeEmployeeGetter) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeEmployeeGetter) CountByDepartment(ctx context.Context, departmentID string) (int64, error) {
	return 0, nil
}

func (f *fakeEmployeeGetter) SetActive(ctx context.Context, id string, active bool, status employee.EmploymentStatus) error {
	return nil
}

func newTestService(t *testing.T) (leave.LeaveService, *fakeLeaveRepo) {
	t.Helper()
	repo := newFakeLeaveRepo()
	svc := NewLeaveService(fakeTxManager{}, repo, newFakeEmployeeGetter("emp-1", "emp-2"))
	return svc, repo
}

func createRequest(start, end string) leave.CreateLeaveRequestRequest {
	return leave.CreateLeaveRequestRequest{
		EmployeeID: "emp-1",
		LeaveType:  "VACATION",
		StartDate:  start,
		EndDate:    end,
		Reason:     "family trip",
	}
}

func TestCreateLeaveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending request", func(t *testing.T) {
		svc, _ := newTestService(t)

		detail, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)
		assert.Equal(t, "PENDING", detail.Status)
		assert.Equal(t, 5, detail.DurationDays)
		assert.Empty(t, detail.ApprovedBy)
	})

	t.Run("single day leave counts one day", func(t *testing.T) {
		svc, _ := newTestService(t)

		detail, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-01"))
		require.NoError(t, err)
		assert.Equal(t, 1, detail.DurationDays)
	})

	t.Run("rejects end date before start date", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, createRequest("2025-03-10", "2025-03-05"))
		assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
	})

	t.Run("rejects overlap with a pending request", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, createRequest("2025-03-04", "2025-03-10"))
		assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
	})

	t.Run("touching end dates overlap because ranges are inclusive", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, createRequest("2025-03-05", "2025-03-08"))
		assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
	})

	t.Run("adjacent non-overlapping range is accepted", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		_, err = svc.Create(ctx, createRequest("2025-03-06", "2025-03-10"))
		assert.NoError(t, err)
	})

	t.Run("rejected requests do not block new ones", func(t *testing.T) {
		svc, repo := newTestService(t)

		detail, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		_, err = svc.Reject(ctx, leave.DecideRequest{ID: detail.ID, ApprovedBy: "manager"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, createRequest("2025-03-03", "2025-03-04"))
		assert.NoError(t, err)
		assert.Len(t, repo.requests, 2)
	})

	t.Run("another employee's overlapping range is fine", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		other := createRequest("2025-03-01", "2025-03-05")
		other.EmployeeID = "emp-2"
		_, err = svc.Create(ctx, other)
		assert.NoError(t, err)
	})

	t.Run("inactive employee cannot request leave", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		employees := newFakeEmployeeGetter("emp-1")
		emp := employees.employees["emp-1"]
		emp.IsActive = false
		employees.employees["emp-1"] = emp
		svc := NewLeaveService(fakeTxManager{}, repo, employees)

		_, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		assert.ErrorIs(t, err, leave.ErrInactiveEmployee)
		assert.Empty(t, repo.requests)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, _ := newTestService(t)

		req := createRequest("2025-03-01", "2025-03-05")
		req.EmployeeID = "missing"
		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestUpdateLeaveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("moving a request past a sibling is rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		first, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)
		_, err = svc.Create(ctx, createRequest("2025-03-10", "2025-03-12"))
		require.NoError(t, err)

		end := "2025-03-11"
		_, err = svc.Update(ctx, leave.UpdateLeaveRequestRequest{ID: first.ID, EndDate: &end})
		assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
	})

	t.Run("a request does not overlap itself", func(t *testing.T) {
		svc, _ := newTestService(t)

		detail, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		end := "2025-03-04"
		updated, err := svc.Update(ctx, leave.UpdateLeaveRequestRequest{ID: detail.ID, EndDate: &end})
		require.NoError(t, err)
		assert.Equal(t, 4, updated.DurationDays)
	})

	t.Run("deactivated employee cannot edit a pending request", func(t *testing.T) {
		repo := newFakeLeaveRepo()
		employees := newFakeEmployeeGetter("emp-1")
		svc := NewLeaveService(fakeTxManager{}, repo, employees)

		detail, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		emp := employees.employees["emp-1"]
		emp.IsActive = false
		employees.employees["emp-1"] = emp

		end := "2025-03-04"
		_, err = svc.Update(ctx, leave.UpdateLeaveRequestRequest{ID: detail.ID, EndDate: &end})
		assert.ErrorIs(t, err, leave.ErrInactiveEmployee)
	})

	t.Run("processed requests cannot be edited", func(t *testing.T) {
		svc, _ := newTestService(t)

		detail, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)
		_, err = svc.Approve(ctx, leave.DecideRequest{ID: detail.ID, ApprovedBy: "manager"})
		require.NoError(t, err)

		reason := "changed my mind"
		_, err = svc.Update(ctx, leave.UpdateLeaveRequestRequest{ID: detail.ID, Reason: &reason})
		assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
	})
}

func TestDecideLeaveRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("approve records the approver", func(t *testing.T) {
		svc, _ := newTestService(t)

		detail, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		approved, err := svc.Approve(ctx, leave.DecideRequest{ID: detail.ID, ApprovedBy: "manager"})
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", approved.Status)
		assert.Equal(t, "manager", approved.ApprovedBy)
	})

	t.Run("missing approver defaults to System", func(t *testing.T) {
		svc, _ := newTestService(t)

		detail, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		rejected, err := svc.Reject(ctx, leave.DecideRequest{ID: detail.ID})
		require.NoError(t, err)
		assert.Equal(t, "REJECTED", rejected.Status)
		assert.Equal(t, "System", rejected.ApprovedBy)
	})

	t.Run("double approve fails", func(t *testing.T) {
		svc, _ := newTestService(t)

		detail, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		_, err = svc.Approve(ctx, leave.DecideRequest{ID: detail.ID, ApprovedBy: "manager"})
		require.NoError(t, err)

		_, err = svc.Approve(ctx, leave.DecideRequest{ID: detail.ID, ApprovedBy: "manager"})
		assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
	})

	t.Run("rejecting an approved request fails", func(t *testing.T) {
		svc, _ := newTestService(t)

		detail, err := svc.Create(ctx, createRequest("2025-03-01", "2025-03-05"))
		require.NoError(t, err)

		_, err = svc.Approve(ctx, leave.DecideRequest{ID: detail.ID, ApprovedBy: "manager"})
		require.NoError(t, err)

		_, err = svc.Reject(ctx, leave.DecideRequest{ID: detail.ID, ApprovedBy: "manager"})
		assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
	})

	t.Run("deciding a missing request fails", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Approve(ctx, leave.DecideRequest{ID: "nope", ApprovedBy: "manager"})
		assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
	})
}
