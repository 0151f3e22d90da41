package department

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/emsuite/ems-backend-go/internal/domain/department"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDepartmentRepo struct {
	departments  map[string]department.Department
	activeCounts map[string]int64
	nextID       int
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{
		departments:  make(map[string]department.Department),
		activeCounts: make(map[string]int64),
	}
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	for _, existing := range f.departments {
		if strings.EqualFold(existing.Name, dept.Name) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
	}
	f.nextID++
	dept.ID = fmt.Sprintf("dept-%d", f.nextID)
	f.departments[dept.ID] = dept
	return dept, nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	dept, ok := f.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

func (f *fakeDepartmentRepo) GetByName(ctx context.Context, name string) (department.Department, error) {
	for _, dept := range f.departments {
		if strings.EqualFold(dept.Name, name) {
			return dept, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) List(ctx context.Context, filter department.DepartmentFilter) ([]department.Department, int64, error) {
	var departments []department.Department
	for _, dept := range f.departments {
		departments = append(departments, dept)
	}
	return departments, int64(len(departments)), nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, dept department.Department) error {
	if _, ok := f.departments[dept.ID]; !ok {
		return department.ErrDepartmentNotFound
	}
	f.departments[dept.ID] = dept
	return nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	delete(f.departments, id)
	return nil
}

func (f *fakeDepartmentRepo) CountActiveEmployees(ctx context.Context, id string) (int64, error) {
	return f.activeCounts[id], nil
}

func TestCreateDepartment(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an active department", func(t *testing.T) {
		svc := NewDepartmentService(newFakeDepartmentRepo())

		resp, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
		require.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.True(t, resp.IsActive)
	})

	t.Run("rejects duplicate names case-insensitively", func(t *testing.T) {
		svc := NewDepartmentService(newFakeDepartmentRepo())

		_, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, department.CreateDepartmentRequest{Name: "engineering"})
		assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
	})

	t.Run("rejects names shorter than two characters", func(t *testing.T) {
		svc := NewDepartmentService(newFakeDepartmentRepo())

		_, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "E"})
		assert.Error(t, err)
	})
}

func TestDeactivationGuard(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, activeEmployees int64) (department.DepartmentService, *fakeDepartmentRepo, string) {
		t.Helper()
		repo := newFakeDepartmentRepo()
		svc := NewDepartmentService(repo)
		resp, err := svc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
		require.NoError(t, err)
		repo.activeCounts[resp.ID] = activeEmployees
		return svc, repo, resp.ID
	}

	t.Run("deactivate fails while active employees remain", func(t *testing.T) {
		svc, _, id := setup(t, 3)

		_, err := svc.Deactivate(ctx, id)
		assert.ErrorIs(t, err, department.ErrHasActiveEmployees)
	})

	t.Run("deactivate succeeds once the department is empty", func(t *testing.T) {
		svc, _, id := setup(t, 0)

		resp, err := svc.Deactivate(ctx, id)
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("update to inactive hits the same guard", func(t *testing.T) {
		svc, _, id := setup(t, 1)

		inactive := false
		_, err := svc.Update(ctx, department.UpdateDepartmentRequest{ID: id, IsActive: &inactive})
		assert.ErrorIs(t, err, department.ErrHasActiveEmployees)
	})

	t.Run("delete fails while active employees remain", func(t *testing.T) {
		svc, repo, id := setup(t, 2)

		err := svc.Delete(ctx, id)
		assert.ErrorIs(t, err, department.ErrHasActiveEmployees)
		assert.Contains(t, repo.departments, id)
	})

	t.Run("activate needs no guard", func(t *testing.T) {
		svc, repo, id := setup(t, 5)

		dept := repo.departments[id]
		dept.IsActive = false
		repo.departments[id] = dept

		resp, err := svc.Activate(ctx, id)
		require.NoError(t, err)
		assert.True(t, resp.IsActive)
	})
}
