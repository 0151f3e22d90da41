package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/department"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, description, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, dept.Name, dept.Description, dept.IsActive).
		Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, err
	}

	return dept, nil
}

func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.id, d.name, d.description, d.is_active, d.created_at, d.updated_at,
			   COUNT(e.id) FILTER (WHERE e.is_active) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		WHERE d.id = $1
		GROUP BY d.id
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, id).Scan(
		&dept.ID, &dept.Name, &dept.Description, &dept.IsActive,
		&dept.CreatedAt, &dept.UpdatedAt, &dept.EmployeeCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}

	return dept, nil
}

func (r *departmentRepositoryImpl) GetByName(ctx context.Context, name string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM departments
		WHERE LOWER(name) = LOWER($1)
	`

	var dept department.Department
	err := q.QueryRow(ctx, query, name).Scan(
		&dept.ID, &dept.Name, &dept.Description, &dept.IsActive,
		&dept.CreatedAt, &dept.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}

	return dept, nil
}

func (r *departmentRepositoryImpl) List(ctx context.Context, filter department.DepartmentFilter) ([]department.Department, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.IsActive != nil {
		whereClause += fmt.Sprintf(" AND d.is_active = $%d", argIndex)
		args = append(args, *filter.IsActive)
		argIndex++
	}

	if filter.Search != nil && *filter.Search != "" {
		whereClause += fmt.Sprintf(" AND (d.name ILIKE $%d OR d.description ILIKE $%d)", argIndex, argIndex)
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM departments d %s`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "d.name"
	if filter.SortBy == "created_at" {
		sortBy = "d.created_at"
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
		SELECT d.id, d.name, d.description, d.is_active, d.created_at, d.updated_at,
			   COUNT(e.id) FILTER (WHERE e.is_active) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		%s
		GROUP BY d.id
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortBy, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var dept department.Department
		err := rows.Scan(
			&dept.ID, &dept.Name, &dept.Description, &dept.IsActive,
			&dept.CreatedAt, &dept.UpdatedAt, &dept.EmployeeCount,
		)
		if err != nil {
			return nil, 0, err
		}
		departments = append(departments, dept)
	}

	return departments, total, nil
}

func (r *departmentRepositoryImpl) Update(ctx context.Context, dept department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET name = $2, description = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, dept.ID, dept.Name, dept.Description, dept.IsActive)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.ErrDepartmentNameExists
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (r *departmentRepositoryImpl) CountActiveEmployees(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE department_id = $1 AND is_active`, id,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
