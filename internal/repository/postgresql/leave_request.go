package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/leave"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, reason, status, approved_by,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.LeaveType, request.StartDate, request.EndDate,
		request.Reason, request.Status, request.ApprovedBy,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.reason, lr.status, lr.approved_by, lr.created_at, lr.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		WHERE lr.id = $1
	`

	var request leave.LeaveRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&request.ID, &request.EmployeeID, &request.LeaveType, &request.StartDate, &request.EndDate,
		&request.Reason, &request.Status, &request.ApprovedBy, &request.CreatedAt, &request.UpdatedAt,
		&request.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND lr.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}

	if filter.DepartmentID != nil {
		whereClause += fmt.Sprintf(" AND e.department_id = $%d", argIndex)
		args = append(args, *filter.DepartmentID)
		argIndex++
	}

	if filter.LeaveType != nil {
		whereClause += fmt.Sprintf(" AND lr.leave_type = $%d", argIndex)
		args = append(args, *filter.LeaveType)
		argIndex++
	}

	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND lr.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.DateFrom != nil {
		whereClause += fmt.Sprintf(" AND lr.start_date >= $%d", argIndex)
		args = append(args, *filter.DateFrom)
		argIndex++
	}

	if filter.DateTo != nil {
		whereClause += fmt.Sprintf(" AND lr.end_date <= $%d", argIndex)
		args = append(args, *filter.DateTo)
		argIndex++
	}

	if filter.Search != nil && *filter.Search != "" {
		whereClause += fmt.Sprintf(
			" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR lr.reason ILIKE $%d)",
			argIndex, argIndex, argIndex)
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		%s
	`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "lr.created_at"
	if filter.SortBy == "start_date" {
		sortBy = "lr.start_date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * limit
	}

	query := fmt.Sprintf(`
		SELECT lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date,
			   lr.reason, lr.status, lr.approved_by, lr.created_at, lr.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_requests lr
		JOIN employees e ON lr.employee_id = e.id
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortBy, sortOrder, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var request leave.LeaveRequest
		err := rows.Scan(
			&request.ID, &request.EmployeeID, &request.LeaveType, &request.StartDate, &request.EndDate,
			&request.Reason, &request.Status, &request.ApprovedBy, &request.CreatedAt, &request.UpdatedAt,
			&request.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, request)
	}

	return requests, total, nil
}

func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.LeaveRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET leave_type = $2, start_date = $3, end_date = $4, reason = $5, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		request.ID, request.LeaveType, request.StartDate, request.EndDate, request.Reason,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

// UpdateStatus transitions the request status only when it is still PENDING,
// making concurrent approve/reject decisions race-safe.
func (r *leaveRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status leave.Status, approvedBy string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, approved_by = $3, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'
	`

	commandTag, err := q.Exec(ctx, query, id, status, approvedBy)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrAlreadyProcessed
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrLeaveRequestNotFound
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) CheckOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Inclusive range intersection: [s1, e1] overlaps [s2, e2] when
	// s1 <= e2 AND e1 >= s2. REJECTED requests never block.
	// The exclusion compares as text so an empty excludeID never hits a
	// uuid cast; ids render to 36 chars, so '' excludes no rows.
	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status IN ('PENDING', 'APPROVED')
			  AND start_date <= $3
			  AND end_date >= $2
			  AND id::text <> $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, startDate, endDate, excludeID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *leaveRequestRepositoryImpl) HasApprovedLeaveOn(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE employee_id = $1
			  AND status = 'APPROVED'
			  AND start_date <= $2
			  AND end_date >= $2
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *leaveRequestRepositoryImpl) CountByStatus(ctx context.Context, status leave.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
