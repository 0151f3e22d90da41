package department

import "time"

// Department entity
type Department struct {
	ID          string
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Derived (for responses)
	EmployeeCount int64
}
