package postgresql

import (
	"context"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/analytics"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepositoryImpl{db: db}
}

func (r *analyticsRepositoryImpl) ListAttendanceRecords(ctx context.Context, month, year *int) ([]analytics.Record, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if month != nil {
		whereClause += fmt.Sprintf(" AND EXTRACT(MONTH FROM a.date) = $%d", argIndex)
		args = append(args, *month)
		argIndex++
	}

	if year != nil {
		whereClause += fmt.Sprintf(" AND EXTRACT(YEAR FROM a.date) = $%d", argIndex)
		args = append(args, *year)
		argIndex++
	}

	query := fmt.Sprintf(`
		SELECT a.date, a.status, d.name AS department_name, a.check_in_time, a.check_out_time
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		JOIN departments d ON e.department_id = d.id
		%s
		ORDER BY a.date
	`, whereClause)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []analytics.Record
	for rows.Next() {
		var record analytics.Record
		err := rows.Scan(
			&record.Date, &record.Status, &record.DepartmentName,
			&record.CheckInTime, &record.CheckOutTime,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *analyticsRepositoryImpl) GetEmployeeStats(ctx context.Context) (analytics.EmployeeStats, error) {
	q := GetQuerier(ctx, r.db)

	var stats analytics.EmployeeStats
	err := q.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
		FROM employees
	`).Scan(&stats.Total, &stats.Active)
	if err != nil {
		return analytics.EmployeeStats{}, err
	}

	return stats, nil
}

func (r *analyticsRepositoryImpl) ListDepartmentHeadcounts(ctx context.Context) ([]analytics.DepartmentCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.name, COUNT(e.id)
		FROM departments d
		JOIN employees e ON e.department_id = d.id AND e.is_active
		GROUP BY d.name
		ORDER BY COUNT(e.id) DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []analytics.DepartmentCount
	for rows.Next() {
		var count analytics.DepartmentCount
		if err := rows.Scan(&count.Department, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	return counts, nil
}

func (r *analyticsRepositoryImpl) ListEmploymentStatusCounts(ctx context.Context) ([]analytics.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employment_status, COUNT(*)
		FROM employees
		GROUP BY employment_status
		ORDER BY COUNT(*) DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []analytics.StatusCount
	for rows.Next() {
		var count analytics.StatusCount
		if err := rows.Scan(&count.Status, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	return counts, nil
}

func (r *analyticsRepositoryImpl) ListDepartmentSalaries(ctx context.Context) ([]analytics.DepartmentSalary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.name, ROUND(AVG(e.salary), 2)
		FROM departments d
		JOIN employees e ON e.department_id = d.id AND e.is_active
		GROUP BY d.name
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var salaries []analytics.DepartmentSalary
	for rows.Next() {
		var salary analytics.DepartmentSalary
		if err := rows.Scan(&salary.Department, &salary.AverageSalary); err != nil {
			return nil, err
		}
		salaries = append(salaries, salary)
	}

	return salaries, nil
}

func (r *analyticsRepositoryImpl) GetPerformanceSummary(ctx context.Context) (analytics.PerformanceSummary, error) {
	q := GetQuerier(ctx, r.db)

	var summary analytics.PerformanceSummary
	err := q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(ROUND(AVG(rating), 2), 0)
		FROM performance_reviews
	`).Scan(&summary.TotalReviews, &summary.AverageRating)
	if err != nil {
		return analytics.PerformanceSummary{}, err
	}

	return summary, nil
}
