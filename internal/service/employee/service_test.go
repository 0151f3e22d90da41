package employee

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/department"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/performance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	nextID    int

	// codeConflicts fails Create with ErrEmployeeCodeExists this many times
	// before succeeding, simulating a concurrent create racing the sequence.
	codeConflicts int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if f.codeConflicts > 0 {
		f.codeConflicts--
		return employee.Employee{}, employee.ErrEmployeeCodeExists
	}
	for _, existing := range f.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
		if existing.EmployeeCode == emp.EmployeeCode {
			return employee.Employee{}, employee.ErrEmployeeCodeExists
		}
	}
	f.nextID++
	emp.ID = fmt.Sprintf("emp-%d", f.nextID)
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) CountByDepartment(ctx context.Context, departmentID string) (int64, error) {
	var count int64
	for _, emp := range f.employees {
		if emp.DepartmentID == departmentID {
			count++
		}
	}
	return count, nil
}

func (f *fakeEmployeeRepo) SetActive(ctx context.Context, id string, active bool, status employee.EmploymentStatus) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.IsActive = active
	emp.EmploymentStatus = status
	f.employees[id] = emp
	return nil
}

type fakeDepartmentRepo struct {
	departments map[string]department.Department
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, dept department.Department) (department.Department, error) {
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
	return department.Department{}, department.ErrDepartmentNotFound
}

func (f *fakeDepartmentRepo) List(ctx context.Context, filter department.DepartmentFilter) ([]department.Department, int64, error) {
	return nil, 0, nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, dept department.Department) error {
	return nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeDepartmentRepo) CountActiveEmployees(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

type fakeReviewRepo struct {
	reviews []performance.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review performance.Review) (performance.Review, error) {
	f.reviews = append(f.reviews, review)
	return review, nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id string) (performance.Review, error) {
	return performance.Review{}, performance.ErrReviewNotFound
}

func (f *fakeReviewRepo) List(ctx context.Context, filter performance.ReviewFilter) ([]performance.Review, int64, error) {
	return nil, 0, nil
}

func (f *fakeReviewRepo) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]performance.Review, error) {
	var reviews []performance.Review
	for _, review := range f.reviews {
		if review.EmployeeID == employeeID {
			reviews = append(reviews, review)
		}
		if len(reviews) == limit {
			break
		}
	}
	return reviews, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, review performance.Review) error {
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeReviewRepo) Exists(ctx context.Context, employeeID string, reviewDate time.Time) (bool, error) {
	return false, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, nil
}

func (f *fakeAttendanceRepo) ListForEmployee(ctx context.Context, employeeID string, month, year *int) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for _, record := range f.records {
		if record.EmployeeID == employeeID {
			records = append(records, record)
		}
	}
	return records, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, record attendance.Attendance) error {
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

type testEnv struct {
	svc            employee.EmployeeService
	employeeRepo   *fakeEmployeeRepo
	reviewRepo     *fakeReviewRepo
	attendanceRepo *fakeAttendanceRepo
}

func newTestEnv() testEnv {
	employeeRepo := newFakeEmployeeRepo()
	departmentRepo := &fakeDepartmentRepo{departments: map[string]department.Department{
		"dept-1": {ID: "dept-1", Name: "Engineering", IsActive: true},
		"dept-2": {ID: "dept-2", Name: "Human Resources", IsActive: true},
	}}
	reviewRepo := &fakeReviewRepo{}
	attendanceRepo := &fakeAttendanceRepo{}

	return testEnv{
		svc:            NewEmployeeService(employeeRepo, departmentRepo, reviewRepo, attendanceRepo),
		employeeRepo:   employeeRepo,
		reviewRepo:     reviewRepo,
		attendanceRepo: attendanceRepo,
	}
}

func createRequest(email string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        email,
		PhoneNumber:  "+15551234567",
		DepartmentID: "dept-1",
		Position:     "Engineer",
		HireDate:     "2025-01-15",
		Salary:       "85000.00",
	}
}

func TestCreateEmployee(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a department-prefixed code", func(t *testing.T) {
		env := newTestEnv()

		detail, err := env.svc.Create(ctx, createRequest("jane.doe@example.com"))
		require.NoError(t, err)
		assert.Equal(t, "ENG0001", detail.EmployeeCode)
		assert.Equal(t, "ACTIVE", detail.EmploymentStatus)
		assert.True(t, detail.IsActive)
	})

	t.Run("sequence grows with department headcount", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.svc.Create(ctx, createRequest("first@example.com"))
		require.NoError(t, err)

		detail, err := env.svc.Create(ctx, createRequest("second@example.com"))
		require.NoError(t, err)
		assert.Equal(t, "ENG0002", detail.EmployeeCode)
	})

	t.Run("code prefix strips spaces from the department name", func(t *testing.T) {
		env := newTestEnv()

		req := createRequest("hr@example.com")
		req.DepartmentID = "dept-2"
		detail, err := env.svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "HUM0001", detail.EmployeeCode)
	})

	t.Run("retries the sequence on a code collision", func(t *testing.T) {
		env := newTestEnv()
		env.employeeRepo.codeConflicts = 2

		detail, err := env.svc.Create(ctx, createRequest("jane.doe@example.com"))
		require.NoError(t, err)
		assert.Equal(t, "ENG0003", detail.EmployeeCode)
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.svc.Create(ctx, createRequest("jane.doe@example.com"))
		require.NoError(t, err)

		_, err = env.svc.Create(ctx, createRequest("jane.doe@example.com"))
		assert.ErrorIs(t, err, employee.ErrEmailExists)
	})

	t.Run("rejects an unknown department", func(t *testing.T) {
		env := newTestEnv()

		req := createRequest("jane.doe@example.com")
		req.DepartmentID = "missing"
		_, err := env.svc.Create(ctx, req)
		assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
	})
}

func TestEmployeeCode(t *testing.T) {
	tests := []struct {
		department string
		seq        int64
		want       string
	}{
		{"Engineering", 1, "ENG0001"},
		{"Engineering", 42, "ENG0042"},
		{"Human Resources", 7, "HUM0007"},
		{"IT", 3, "IT0003"},
		{"Sales", 1234, "SAL1234"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, employeeCode(tt.department, tt.seq))
	}
}

func TestActivateDeactivate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	detail, err := env.svc.Create(ctx, createRequest("jane.doe@example.com"))
	require.NoError(t, err)

	deactivated, err := env.svc.Deactivate(ctx, detail.ID)
	require.NoError(t, err)
	assert.False(t, deactivated.IsActive)
	assert.Equal(t, "INACTIVE", deactivated.EmploymentStatus)

	activated, err := env.svc.Activate(ctx, detail.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.Equal(t, "ACTIVE", activated.EmploymentStatus)
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	detail, err := env.svc.Create(ctx, createRequest("jane.doe@example.com"))
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		env.reviewRepo.reviews = append(env.reviewRepo.reviews, performance.Review{
			ID:         fmt.Sprintf("review-%d", i),
			EmployeeID: detail.ID,
			Rating:     4,
			ReviewDate: time.Date(2025, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC),
			Reviewer:   "manager",
		})
	}

	day := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	addRecord := func(status attendance.Status) {
		env.attendanceRepo.records = append(env.attendanceRepo.records, attendance.Attendance{
			EmployeeID: detail.ID,
			Date:       day,
			Status:     status,
		})
		day = day.AddDate(0, 0, 1)
	}
	addRecord(attendance.StatusPresent)
	addRecord(attendance.StatusPresent)
	addRecord(attendance.StatusLate)
	addRecord(attendance.StatusAbsent)

	profile, err := env.svc.Profile(ctx, detail.ID)
	require.NoError(t, err)

	assert.Len(t, profile.RecentPerformances, 5)
	assert.Equal(t, int64(4), profile.AttendanceStats.TotalDays)
	assert.Equal(t, int64(3), profile.AttendanceStats.PresentDays)
	assert.Equal(t, 75.0, profile.AttendanceStats.AttendanceRate)
}
