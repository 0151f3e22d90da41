package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
)

// defaultApprover is recorded when a decision request carries no approver.
const defaultApprover = "System"

type LeaveServiceImpl struct {
	txManager    database.TxManager
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(
	txManager database.TxManager,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		txManager:    txManager,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestDetail, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestDetail{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	if endDate.Before(startDate) {
		return leave.LeaveRequestDetail{}, leave.ErrInvalidDateRange
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestDetail{}, err
	}
	if !emp.IsActive {
		return leave.LeaveRequestDetail{}, leave.ErrInactiveEmployee
	}

	request := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	// Overlap check and insert run in one transaction so two concurrent
	// requests for the same range cannot both pass the check.
	var created leave.LeaveRequest
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		overlapping, err := s.leaveRepo.CheckOverlapping(txCtx, req.EmployeeID, startDate, endDate, "")
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave: %w", err)
		}
		if overlapping {
			return leave.ErrOverlappingLeave
		}

		created, err = s.leaveRepo.Create(txCtx, request)
		return err
	})
	if err != nil {
		return leave.LeaveRequestDetail{}, err
	}

	name := emp.FullName()
	created.EmployeeName = &name
	return leave.ToDetail(created), nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveRequestDetail, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestDetail{}, err
	}
	return leave.ToDetail(request), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestListItem, int64, error) {
	requests, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}

	items := make([]leave.LeaveRequestListItem, 0, len(requests))
	for _, request := range requests {
		items = append(items, leave.ToListItem(request))
	}

	return items, total, nil
}

func (s *LeaveServiceImpl) Update(ctx context.Context, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequestDetail, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestDetail{}, err
	}

	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestDetail{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequestDetail{}, leave.ErrAlreadyProcessed
	}

	emp, err := s.employeeRepo.GetByID(ctx, request.EmployeeID)
	if err != nil {
		return leave.LeaveRequestDetail{}, err
	}
	if !emp.IsActive {
		return leave.LeaveRequestDetail{}, leave.ErrInactiveEmployee
	}

	if req.LeaveType != nil {
		request.LeaveType = leave.Type(*req.LeaveType)
	}
	if req.StartDate != nil {
		startDate, _ := time.Parse("2006-01-02", *req.StartDate)
		request.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, _ := time.Parse("2006-01-02", *req.EndDate)
		request.EndDate = endDate
	}
	if req.Reason != nil {
		request.Reason = *req.Reason
	}

	if request.EndDate.Before(request.StartDate) {
		return leave.LeaveRequestDetail{}, leave.ErrInvalidDateRange
	}

	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		overlapping, err := s.leaveRepo.CheckOverlapping(txCtx, request.EmployeeID, request.StartDate, request.EndDate, request.ID)
		if err != nil {
			return fmt.Errorf("failed to check overlapping leave: %w", err)
		}
		if overlapping {
			return leave.ErrOverlappingLeave
		}

		return s.leaveRepo.Update(txCtx, request)
	})
	if err != nil {
		return leave.LeaveRequestDetail{}, err
	}

	return s.Get(ctx, request.ID)
}

func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.leaveRepo.Delete(ctx, id)
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideRequest) (leave.LeaveRequestDetail, error) {
	return s.decide(ctx, req, leave.StatusApproved)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideRequest) (leave.LeaveRequestDetail, error) {
	return s.decide(ctx, req, leave.StatusRejected)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideRequest, status leave.Status) (leave.LeaveRequestDetail, error) {
	request, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestDetail{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequestDetail{}, leave.ErrAlreadyProcessed
	}

	approvedBy := req.ApprovedBy
	if approvedBy == "" {
		approvedBy = defaultApprover
	}

	if err := s.leaveRepo.UpdateStatus(ctx, req.ID, status, approvedBy); err != nil {
		return leave.LeaveRequestDetail{}, err
	}

	return s.Get(ctx, req.ID)
}
