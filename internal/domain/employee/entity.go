package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Address      *string
	DOB          *time.Time
	Gender       *Gender

	DepartmentID     string
	Position         string
	HireDate         time.Time
	Salary           decimal.Decimal
	EmploymentStatus EmploymentStatus

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	DepartmentName *string
}

// FullName joins first and last name for display.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "ACTIVE"
	EmploymentStatusInactive   EmploymentStatus = "INACTIVE"
	EmploymentStatusTerminated EmploymentStatus = "TERMINATED"
	EmploymentStatusOnLeave    EmploymentStatus = "ON_LEAVE"
)
