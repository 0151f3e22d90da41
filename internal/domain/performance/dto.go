package performance

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID string `json:"employee_id"`
	Rating     int    `json:"rating"`
	ReviewDate string `json:"review_date"`
	Reviewer   string `json:"reviewer"`
	Comments   string `json:"comments"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating must be between 1 and 5"})
	}
	if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "review_date", Message: "review_date must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.Reviewer) {
		errs = append(errs, validator.ValidationError{Field: "reviewer", Message: "reviewer is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateReviewRequest struct {
	ID       string  `json:"-"`
	Rating   *int    `json:"rating"`
	Reviewer *string `json:"reviewer"`
	Comments *string `json:"comments"`
}

func (r *UpdateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewFilter struct {
	EmployeeID   *string
	DepartmentID *string
	Rating       *int
	DateFrom     *time.Time
	DateTo       *time.Time
	Page         int
	Limit        int
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	Rating       int       `json:"rating"`
	RatingLabel  string    `json:"rating_label"`
	ReviewDate   string    `json:"review_date"`
	Reviewer     string    `json:"reviewer"`
	Comments     string    `json:"comments,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToResponse(rev Review) ReviewResponse {
	return ReviewResponse{
		ID:           rev.ID,
		EmployeeID:   rev.EmployeeID,
		EmployeeName: rev.EmployeeName,
		Rating:       rev.Rating,
		RatingLabel:  RatingLabel(rev.Rating),
		ReviewDate:   rev.ReviewDate.Format("2006-01-02"),
		Reviewer:     rev.Reviewer,
		Comments:     rev.Comments,
		CreatedAt:    rev.CreatedAt,
		UpdatedAt:    rev.UpdatedAt,
	}
}
