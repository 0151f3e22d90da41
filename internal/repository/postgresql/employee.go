package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.employee_code, e.first_name, e.last_name, e.email, e.phone_number,
	e.address, e.dob, e.gender, e.department_id, e.position, e.hire_date,
	e.salary, e.employment_status, e.is_active, e.created_at, e.updated_at,
	d.name AS department_name
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PhoneNumber,
		&emp.Address, &emp.DOB, &emp.Gender, &emp.DepartmentID, &emp.Position, &emp.HireDate,
		&emp.Salary, &emp.EmploymentStatus, &emp.IsActive, &emp.CreatedAt, &emp.UpdatedAt,
		&emp.DepartmentName,
	)
	return emp, err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, employee_code, first_name, last_name, email, phone_number,
			address, dob, gender, department_id, position, hire_date,
			salary, employment_status, is_active,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, $11,
			$12, $13, $14,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber,
		emp.Address, emp.DOB, emp.Gender, emp.DepartmentID, emp.Position, emp.HireDate,
		emp.Salary, emp.EmploymentStatus, emp.IsActive,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return employee.Employee{}, employee.ErrEmailExists
			}
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
		return employee.Employee{}, err
	}

	return emp, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		WHERE e.id = $1
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		WHERE LOWER(e.email) = LOWER($1)
	`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.DepartmentID != nil {
		whereClause += fmt.Sprintf(" AND e.department_id = $%d", argIndex)
		args = append(args, *filter.DepartmentID)
		argIndex++
	}

	if filter.EmploymentStatus != nil {
		whereClause += fmt.Sprintf(" AND e.employment_status = $%d", argIndex)
		args = append(args, *filter.EmploymentStatus)
		argIndex++
	}

	if filter.IsActive != nil {
		whereClause += fmt.Sprintf(" AND e.is_active = $%d", argIndex)
		args = append(args, *filter.IsActive)
		argIndex++
	}

	if filter.Gender != nil {
		whereClause += fmt.Sprintf(" AND e.gender = $%d", argIndex)
		args = append(args, *filter.Gender)
		argIndex++
	}

	if filter.HireDateFrom != nil {
		whereClause += fmt.Sprintf(" AND e.hire_date >= $%d", argIndex)
		args = append(args, *filter.HireDateFrom)
		argIndex++
	}

	if filter.HireDateTo != nil {
		whereClause += fmt.Sprintf(" AND e.hire_date <= $%d", argIndex)
		args = append(args, *filter.HireDateTo)
		argIndex++
	}

	if filter.Search != nil && *filter.Search != "" {
		whereClause += fmt.Sprintf(
			" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.email ILIKE $%d OR e.employee_code ILIKE $%d)",
			argIndex, argIndex, argIndex, argIndex)
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM employees e %s`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "e.created_at"
	switch filter.SortBy {
	case "first_name":
		sortBy = "e.first_name"
	case "hire_date":
		sortBy = "e.hire_date"
	case "employee_code":
		sortBy = "e.employee_code"
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
		SELECT %s
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, sortBy, sortOrder, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}

	return employees, total, nil
}

func (r *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e
		JOIN departments d ON e.department_id = d.id
		WHERE e.is_active
		ORDER BY e.employee_code
	`, employeeColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $2, last_name = $3, email = $4, phone_number = $5,
			address = $6, dob = $7, gender = $8, department_id = $9, position = $10,
			hire_date = $11, salary = $12, employment_status = $13, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		emp.ID, emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber,
		emp.Address, emp.DOB, emp.Gender, emp.DepartmentID, emp.Position,
		emp.HireDate, emp.Salary, emp.EmploymentStatus,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.ErrEmailExists
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) CountByDepartment(ctx context.Context, departmentID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE department_id = $1`, departmentID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *employeeRepositoryImpl) SetActive(ctx context.Context, id string, active bool, status employee.EmploymentStatus) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE employees SET is_active = $2, employment_status = $3, updated_at = NOW() WHERE id = $1`,
		id, active, status,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
