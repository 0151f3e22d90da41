package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/performance"
	"github.com/emsuite/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.ReviewRepository {
	return &performanceRepositoryImpl{db: db}
}

func (r *performanceRepositoryImpl) Create(ctx context.Context, review performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (
			id, employee_id, rating, review_date, reviewer, comments,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		review.EmployeeID, review.Rating, review.ReviewDate, review.Reviewer, review.Comments,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return performance.Review{}, performance.ErrDuplicateReview
		}
		return performance.Review{}, err
	}

	return review, nil
}

func (r *performanceRepositoryImpl) GetByID(ctx context.Context, id string) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, pr.employee_id, pr.rating, pr.review_date, pr.reviewer, pr.comments,
			   pr.created_at, pr.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM performance_reviews pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE pr.id = $1
	`

	var review performance.Review
	err := q.QueryRow(ctx, query, id).Scan(
		&review.ID, &review.EmployeeID, &review.Rating, &review.ReviewDate,
		&review.Reviewer, &review.Comments, &review.CreatedAt, &review.UpdatedAt,
		&review.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, err
	}

	return review, nil
}

func (r *performanceRepositoryImpl) List(ctx context.Context, filter performance.ReviewFilter) ([]performance.Review, int64, error) {
	q := GetQuerier(ctx, r.db)

	// Build WHERE clause
	whereClause := "WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.EmployeeID != nil {
		whereClause += fmt.Sprintf(" AND pr.employee_id = $%d", argIndex)
		args = append(args, *filter.EmployeeID)
		argIndex++
	}

	if filter.DepartmentID != nil {
		whereClause += fmt.Sprintf(" AND e.department_id = $%d", argIndex)
		args = append(args, *filter.DepartmentID)
		argIndex++
	}

	if filter.Rating != nil {
		whereClause += fmt.Sprintf(" AND pr.rating = $%d", argIndex)
		args = append(args, *filter.Rating)
		argIndex++
	}

	if filter.DateFrom != nil {
		whereClause += fmt.Sprintf(" AND pr.review_date >= $%d", argIndex)
		args = append(args, *filter.DateFrom)
		argIndex++
	}

	if filter.DateTo != nil {
		whereClause += fmt.Sprintf(" AND pr.review_date <= $%d", argIndex)
		args = append(args, *filter.DateTo)
		argIndex++
	}

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM performance_reviews pr
		JOIN employees e ON pr.employee_id = e.id
		%s
	`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
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
		SELECT pr.id, pr.employee_id, pr.rating, pr.review_date, pr.reviewer, pr.comments,
			   pr.created_at, pr.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name
		FROM performance_reviews pr
		JOIN employees e ON pr.employee_id = e.id
		%s
		ORDER BY pr.review_date DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		var review performance.Review
		err := rows.Scan(
			&review.ID, &review.EmployeeID, &review.Rating, &review.ReviewDate,
			&review.Reviewer, &review.Comments, &review.CreatedAt, &review.UpdatedAt,
			&review.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, review)
	}

	return reviews, total, nil
}

func (r *performanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, rating, review_date, reviewer, comments,
			   created_at, updated_at
		FROM performance_reviews
		WHERE employee_id = $1
		ORDER BY review_date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		var review performance.Review
		err := rows.Scan(
			&review.ID, &review.EmployeeID, &review.Rating, &review.ReviewDate,
			&review.Reviewer, &review.Comments, &review.CreatedAt, &review.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *performanceRepositoryImpl) Update(ctx context.Context, review performance.Review) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews
		SET rating = $2, review_date = $3, reviewer = $4, comments = $5, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query,
		review.ID, review.Rating, review.ReviewDate, review.Reviewer, review.Comments,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return performance.ErrDuplicateReview
		}
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return performance.ErrReviewNotFound
	}
	return nil
}

func (r *performanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return performance.ErrReviewNotFound
	}
	return nil
}

func (r *performanceRepositoryImpl) Exists(ctx context.Context, employeeID string, reviewDate time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM performance_reviews WHERE employee_id = $1 AND review_date = $2)`,
		employeeID, reviewDate,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
