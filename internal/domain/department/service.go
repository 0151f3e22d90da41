package department

import "context"

type DepartmentService interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	Get(ctx context.Context, id string) (DepartmentResponse, error)
	List(ctx context.Context, filter DepartmentFilter) ([]DepartmentResponse, int64, error)
	Update(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error

	// Activate marks the department active again.
	Activate(ctx context.Context, id string) (DepartmentResponse, error)

	// Deactivate fails with ErrHasActiveEmployees while active employees
	// are still assigned to the department.
	Deactivate(ctx context.Context, id string) (DepartmentResponse, error)
}
