package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			id, employee_id, date, status, check_in_time, check_out_time, notes,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID, record.Date, record.Status,
		record.CheckInTime, record.CheckOutTime, record.Notes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		// The unique (employee_id, date) index is the final authority on
		// duplicates; any pre-check in the service is advisory only.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrDuplicateRecord
		}
		return attendance.Attendance{}, err
	}

	return record, nil
}

func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in_time, a.check_out_time,
			   a.notes, a.created_at, a.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   d.name AS department_name
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		JOIN departments d ON e.department_id = d.id
		WHERE a.id = $1
	`

	var record attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.Status,
		&record.CheckInTime, &record.CheckOutTime, &record.Notes,
		&record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName, &record.DepartmentName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return record, nil
}

func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, status, check_in_time, check_out_time, notes,
			   created_at, updated_at
		FROM attendances
		WHERE employee_id = $1 AND date = $2
	`

	var record attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.Status,
		&record.CheckInTime, &record.CheckOutTime, &record.Notes,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND a.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}

	if filter.DepartmentID != nil {
		whereClause += fmt.Sprintf(" AND e.department_id = $%d", argIndex)
		args = append(args, *filter.DepartmentID)
		argIndex++
	}

	if filter.Status != nil {
		whereClause += fmt.Sprintf(" AND a.status = $%d", argIndex)
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.DateFrom != nil {
		whereClause += fmt.Sprintf(" AND a.date >= $%d", argIndex)
		args = append(args, *filter.DateFrom)
		argIndex++
	}

	if filter.DateTo != nil {
		whereClause += fmt.Sprintf(" AND a.date <= $%d", argIndex)
		args = append(args, *filter.DateTo)
		argIndex++
	}

	if filter.Month != nil {
		whereClause += fmt.Sprintf(" AND EXTRACT(MONTH FROM a.date) = $%d", argIndex)
		args = append(args, *filter.Month)
		argIndex++
	}

	if filter.Year != nil {
		whereClause += fmt.Sprintf(" AND EXTRACT(YEAR FROM a.date) = $%d", argIndex)
		args = append(args, *filter.Year)
		argIndex++
	}

	if filter.Search != nil && *filter.Search != "" {
		whereClause += fmt.Sprintf(
			" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_code ILIKE $%d)",
			argIndex, argIndex, argIndex)
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		%s
	`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "a.date"
	if filter.SortBy == "created_at" {
		sortBy = "a.created_at"
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
		SELECT a.id, a.employee_id, a.date, a.status, a.check_in_time, a.check_out_time,
			   a.notes, a.created_at, a.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   d.name AS department_name
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		JOIN departments d ON e.department_id = d.id
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

	var records []attendance.Attendance
	for rows.Next() {
		var record attendance.Attendance
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.Status,
			&record.CheckInTime, &record.CheckOutTime, &record.Notes,
			&record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName, &record.DepartmentName,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, record)
	}

	return records, total, nil
}

func (r *attendanceRepositoryImpl) ListForEmployee(ctx context.Context, employeeID string, month, year *int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE employee_id = $1"
	args := []interface{}{employeeID}
	argIndex := 2

	if month != nil {
		whereClause += fmt.Sprintf(" AND EXTRACT(MONTH FROM date) = $%d", argIndex)
		args = append(args, *month)
		argIndex++
	}

	if year != nil {
		whereClause += fmt.Sprintf(" AND EXTRACT(YEAR FROM date) = $%d", argIndex)
		args = append(args, *year)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT id, employee_id, date, status, check_in_time, check_out_time, notes,
			   created_at, updated_at
		FROM attendances
		%s
		ORDER BY date
	`, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var record attendance.Attendance
		err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.Status,
			&record.CheckInTime, &record.CheckOutTime, &record.Notes,
			&record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET status = $2, check_in_time = $3, check_out_time = $4, notes = $5, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		record.ID, record.Status, record.CheckInTime, record.CheckOutTime, record.Notes,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}
