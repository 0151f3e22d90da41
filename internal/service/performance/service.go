package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/performance"
)

type ReviewServiceImpl struct {
	performanceRepo performance.ReviewRepository
	employeeRepo    employee.EmployeeRepository
}

func NewReviewService(
	performanceRepo performance.ReviewRepository,
	employeeRepo employee.EmployeeRepository,
) performance.ReviewService {
	return &ReviewServiceImpl{
		performanceRepo: performanceRepo,
		employeeRepo:    employeeRepo,
	}
}

func (s *ReviewServiceImpl) Create(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	reviewDate, _ := time.Parse("2006-01-02", req.ReviewDate)

	// Advisory pre-check; the unique index is the final authority.
	exists, err := s.performanceRepo.Exists(ctx, req.EmployeeID, reviewDate)
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return performance.ReviewResponse{}, performance.ErrDuplicateReview
	}

	review, err := s.performanceRepo.Create(ctx, performance.Review{
		EmployeeID: req.EmployeeID,
		Rating:     req.Rating,
		ReviewDate: reviewDate,
		Reviewer:   req.Reviewer,
		Comments:   req.Comments,
	})
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	name := emp.FullName()
	review.EmployeeName = &name
	return performance.ToResponse(review), nil
}

func (s *ReviewServiceImpl) Get(ctx context.Context, id string) (performance.ReviewResponse, error) {
	review, err := s.performanceRepo.GetByID(ctx, id)
	if err != nil {
		return performance.ReviewResponse{}, err
	}
	return performance.ToResponse(review), nil
}

func (s *ReviewServiceImpl) List(ctx context.Context, filter performance.ReviewFilter) ([]performance.ReviewResponse, int64, error) {
	reviews, total, err := s.performanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list performance reviews: %w", err)
	}

	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, performance.ToResponse(review))
	}

	return responses, total, nil
}

func (s *ReviewServiceImpl) Update(ctx context.Context, req performance.UpdateReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	review, err := s.performanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.ReviewResponse{}, err
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Reviewer != nil {
		review.Reviewer = *req.Reviewer
	}
	if req.Comments != nil {
		review.Comments = *req.Comments
	}

	if err := s.performanceRepo.Update(ctx, review); err != nil {
		return performance.ReviewResponse{}, err
	}

	return s.Get(ctx, review.ID)
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, id string) error {
	return s.performanceRepo.Delete(ctx, id)
}
