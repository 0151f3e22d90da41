package department

import (
	"strings"
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len(strings.TrimSpace(r.Name)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at least 2 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && len(strings.TrimSpace(*r.Name)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at least 2 characters long",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentFilter struct {
	IsActive *bool
	Search   *string
	SortBy   string
	Page     int
	Limit    int
}

type DepartmentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	IsActive      bool      `json:"is_active"`
	EmployeeCount int64     `json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		IsActive:      d.IsActive,
		EmployeeCount: d.EmployeeCount,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
