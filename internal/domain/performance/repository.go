package performance

import (
	"context"
	"time"
)

type ReviewRepository interface {
	Create(ctx context.Context, review Review) (Review, error)
	GetByID(ctx context.Context, id string) (Review, error)
	List(ctx context.Context, filter ReviewFilter) ([]Review, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Review, error)
	Update(ctx context.Context, review Review) error
	Delete(ctx context.Context, id string) error

	// Exists reports whether the employee already has a review on the date.
	Exists(ctx context.Context, employeeID string, reviewDate time.Time) (bool, error)
}

type ReviewService interface {
	Create(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	Get(ctx context.Context, id string) (ReviewResponse, error)
	List(ctx context.Context, filter ReviewFilter) ([]ReviewResponse, int64, error)
	Update(ctx context.Context, req UpdateReviewRequest) (ReviewResponse, error)
	Delete(ctx context.Context, id string) error
}
