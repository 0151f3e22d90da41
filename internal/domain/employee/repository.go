package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// ListActive returns every active employee without pagination. Used by
	// the absence backfill job.
	ListActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error

	// CountByDepartment reports how many employees already belong to a
	// department. Used for employee code generation.
	CountByDepartment(ctx context.Context, departmentID string) (int64, error)

	SetActive(ctx context.Context, id string, active bool, status EmploymentStatus) error
}
