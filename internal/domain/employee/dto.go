package employee

import (
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phone_number"`
	Address      *string `json:"address"`
	DOB          *string `json:"date_of_birth"`
	Gender       *string `json:"gender"`
	DepartmentID string  `json:"department_id"`
	Position     string  `json:"position"`
	HireDate     string  `json:"hire_date"`
	Salary       string  `json:"salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "phone number must be in international format, up to 15 digits"})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be in YYYY-MM-DD format"})
	}
	if r.DOB != nil {
		if _, ok := validator.IsValidDate(*r.DOB); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be in YYYY-MM-DD format"})
		}
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"M", "F", "O"}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be one of M, F, O"})
	}
	if salary, err := decimal.NewFromString(r.Salary); err != nil || salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a non-negative number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Email        *string `json:"email"`
	PhoneNumber  *string `json:"phone_number"`
	Address      *string `json:"address"`
	DOB          *string `json:"date_of_birth"`
	Gender       *string `json:"gender"`
	DepartmentID *string `json:"department_id"`
	Position     *string `json:"position"`
	Salary       *string `json:"salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "phone number must be in international format, up to 15 digits"})
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"M", "F", "O"}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be one of M, F, O"})
	}
	if r.Salary != nil {
		if salary, err := decimal.NewFromString(*r.Salary); err != nil || salary.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a non-negative number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	DepartmentID     *string
	EmploymentStatus *string
	IsActive         *bool
	Gender           *string
	HireDateFrom     *time.Time
	HireDateTo       *time.Time
	Search           *string
	SortBy           string
	SortOrder        string
	Page             int
	Limit            int
}

// EmployeeListItem is the compact shape for list views.
type EmployeeListItem struct {
	ID               string `json:"id"`
	EmployeeCode     string `json:"employee_code"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	DepartmentName   string `json:"department_name"`
	Position         string `json:"position"`
	EmploymentStatus string `json:"employment_status"`
	IsActive         bool   `json:"is_active"`
}

// EmployeeDetail is the full shape for detail views.
type EmployeeDetail struct {
	ID               string    `json:"id"`
	EmployeeCode     string    `json:"employee_code"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phone_number"`
	Address          *string   `json:"address,omitempty"`
	DOB              *string   `json:"date_of_birth,omitempty"`
	Gender           *string   `json:"gender,omitempty"`
	DepartmentID     string    `json:"department_id"`
	DepartmentName   *string   `json:"department_name,omitempty"`
	Position         string    `json:"position"`
	HireDate         string    `json:"hire_date"`
	Salary           string    `json:"salary"`
	EmploymentStatus string    `json:"employment_status"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToListItem(e Employee) EmployeeListItem {
	item := EmployeeListItem{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FullName:         e.FullName(),
		Email:            e.Email,
		Position:         e.Position,
		EmploymentStatus: string(e.EmploymentStatus),
		IsActive:         e.IsActive,
	}
	if e.DepartmentName != nil {
		item.DepartmentName = *e.DepartmentName
	}
	return item
}

func ToDetail(e Employee) EmployeeDetail {
	detail := EmployeeDetail{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		FullName:         e.FullName(),
		Email:            e.Email,
		PhoneNumber:      e.PhoneNumber,
		Address:          e.Address,
		DepartmentID:     e.DepartmentID,
		DepartmentName:   e.DepartmentName,
		Position:         e.Position,
		HireDate:         e.HireDate.Format("2006-01-02"),
		Salary:           e.Salary.StringFixed(2),
		EmploymentStatus: string(e.EmploymentStatus),
		IsActive:         e.IsActive,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
	if e.DOB != nil {
		dob := e.DOB.Format("2006-01-02")
		detail.DOB = &dob
	}
	if e.Gender != nil {
		g := string(*e.Gender)
		detail.Gender = &g
	}
	return detail
}
