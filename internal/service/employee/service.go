package employee

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/emsuite/ems-backend-go/internal/domain/attendance"
	"github.com/emsuite/ems-backend-go/internal/domain/department"
	"github.com/emsuite/ems-backend-go/internal/domain/employee"
	"github.com/emsuite/ems-backend-go/internal/domain/performance"
	"github.com/shopspring/decimal"
)

// codeGenRetries bounds employee code regeneration when concurrent creates
// race for the same sequence number.
const codeGenRetries = 5

type EmployeeServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	departmentRepo  department.DepartmentRepository
	performanceRepo performance.ReviewRepository
	attendanceRepo  attendance.AttendanceRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	performanceRepo performance.ReviewRepository,
	attendanceRepo attendance.AttendanceRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		performanceRepo: performanceRepo,
		attendanceRepo:  attendanceRepo,
	}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeDetail, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeDetail{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.DepartmentID)
	if err != nil {
		return employee.EmployeeDetail{}, err
	}

	// Advisory pre-check; the unique index is the final authority.
	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.EmployeeDetail{}, employee.ErrEmailExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.EmployeeDetail{}, fmt.Errorf("failed to check email: %w", err)
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	salary, _ := decimal.NewFromString(req.Salary)

	emp := employee.Employee{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		PhoneNumber:      req.PhoneNumber,
		Address:          req.Address,
		DepartmentID:     req.DepartmentID,
		Position:         req.Position,
		HireDate:         hireDate,
		Salary:           salary,
		EmploymentStatus: employee.EmploymentStatusActive,
		IsActive:         true,
	}
	if req.DOB != nil {
		dob, _ := time.Parse("2006-01-02", *req.DOB)
		emp.DOB = &dob
	}
	if req.Gender != nil {
		g := employee.Gender(*req.Gender)
		emp.Gender = &g
	}

	count, err := s.employeeRepo.CountByDepartment(ctx, req.DepartmentID)
	if err != nil {
		return employee.EmployeeDetail{}, fmt.Errorf("failed to count department employees: %w", err)
	}

	var created employee.Employee
	for attempt := 0; attempt < codeGenRetries; attempt++ {
		emp.EmployeeCode = employeeCode(dept.Name, count+int64(attempt)+1)
		created, err = s.employeeRepo.Create(ctx, emp)
		if err == nil {
			break
		}
		if !errors.Is(err, employee.ErrEmployeeCodeExists) {
			return employee.EmployeeDetail{}, err
		}
	}
	if err != nil {
		return employee.EmployeeDetail{}, err
	}

	created.DepartmentName = &dept.Name
	return employee.ToDetail(created), nil
}

// employeeCode builds codes like ENG0001: the first three letters of the
// department name uppercased, then a zero-padded sequence number.
func employeeCode(departmentName string, seq int64) string {
	prefix := strings.ToUpper(strings.ReplaceAll(departmentName, " ", ""))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s%04d", prefix, seq)
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeDetail, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeDetail{}, err
	}
	return employee.ToDetail(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeListItem, int64, error) {
	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}

	items := make([]employee.EmployeeListItem, 0, len(employees))
	for _, emp := range employees {
		items = append(items, employee.ToListItem(emp))
	}

	return items, total, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeDetail, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeDetail{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeDetail{}, err
	}

	if req.FirstName != nil {
		emp.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		emp.LastName = *req.LastName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		emp.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.DOB != nil {
		dob, _ := time.Parse("2006-01-02", *req.DOB)
		emp.DOB = &dob
	}
	if req.Gender != nil {
		g := employee.Gender(*req.Gender)
		emp.Gender = &g
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeDetail{}, err
		}
		emp.DepartmentID = *req.DepartmentID
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Salary != nil {
		salary, _ := decimal.NewFromString(*req.Salary)
		emp.Salary = salary
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeDetail{}, err
	}

	return s.Get(ctx, emp.ID)
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) Activate(ctx context.Context, id string) (employee.EmployeeDetail, error) {
	if err := s.employeeRepo.SetActive(ctx, id, true, employee.EmploymentStatusActive); err != nil {
		return employee.EmployeeDetail{}, err
	}
	return s.Get(ctx, id)
}

func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) (employee.EmployeeDetail, error) {
	if err := s.employeeRepo.SetActive(ctx, id, false, employee.EmploymentStatusInactive); err != nil {
		return employee.EmployeeDetail{}, err
	}
	return s.Get(ctx, id)
}

func (s *EmployeeServiceImpl) Profile(ctx context.Context, id string) (employee.EmployeeProfile, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeProfile{}, err
	}

	reviews, err := s.performanceRepo.ListByEmployee(ctx, id, 5)
	if err != nil {
		return employee.EmployeeProfile{}, fmt.Errorf("failed to list performance reviews: %w", err)
	}

	records, err := s.attendanceRepo.ListForEmployee(ctx, id, nil, nil)
	if err != nil {
		return employee.EmployeeProfile{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	profile := employee.EmployeeProfile{
		Employee:           employee.ToDetail(emp),
		RecentPerformances: make([]employee.PerformanceItem, 0, len(reviews)),
	}
	for _, review := range reviews {
		profile.RecentPerformances = append(profile.RecentPerformances, employee.PerformanceItem{
			ID:         review.ID,
			Rating:     review.Rating,
			ReviewDate: review.ReviewDate.Format("2006-01-02"),
			Reviewer:   review.Reviewer,
			Comments:   review.Comments,
		})
	}

	var present int64
	for _, record := range records {
		if record.Status == attendance.StatusPresent || record.Status == attendance.StatusLate {
			present++
		}
	}
	profile.AttendanceStats = employee.AttendanceHeadline{
		TotalDays:   int64(len(records)),
		PresentDays: present,
	}
	if len(records) > 0 {
		profile.AttendanceStats.AttendanceRate = round2(float64(present) / float64(len(records)) * 100)
	}

	return profile, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
