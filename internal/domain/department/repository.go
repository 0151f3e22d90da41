package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, dept Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	GetByName(ctx context.Context, name string) (Department, error)
	List(ctx context.Context, filter DepartmentFilter) ([]Department, int64, error)
	Update(ctx context.Context, dept Department) error
	Delete(ctx context.Context, id string) error

	// CountActiveEmployees reports how many active employees belong to the
	// department. Used by the deactivation guard.
	CountActiveEmployees(ctx context.Context, id string) (int64, error)
}
