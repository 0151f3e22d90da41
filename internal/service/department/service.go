package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/emsuite/ems-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	// Advisory pre-check; the unique index is the final authority.
	_, err := s.departmentRepo.GetByName(ctx, req.Name)
	if err == nil {
		return department.DepartmentResponse{}, department.ErrDepartmentNameExists
	}
	if !errors.Is(err, department.ErrDepartmentNotFound) {
		return department.DepartmentResponse{}, fmt.Errorf("failed to check department name: %w", err)
	}

	dept, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.ToResponse(dept), nil
}

func (s *DepartmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.ToResponse(dept), nil
}

func (s *DepartmentServiceImpl) List(ctx context.Context, filter department.DepartmentFilter) ([]department.DepartmentResponse, int64, error) {
	departments, total, err := s.departmentRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, department.ToResponse(dept))
	}

	return responses, total, nil
}

func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = req.Description
	}
	if req.IsActive != nil {
		if !*req.IsActive {
			if err := s.guardDeactivation(ctx, dept.ID); err != nil {
				return department.DepartmentResponse{}, err
			}
		}
		dept.IsActive = *req.IsActive
	}

	if err := s.departmentRepo.Update(ctx, dept); err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.Get(ctx, dept.ID)
}

func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.guardDeactivation(ctx, id); err != nil {
		return err
	}
	return s.departmentRepo.Delete(ctx, id)
}

func (s *DepartmentServiceImpl) Activate(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	dept.IsActive = true
	if err := s.departmentRepo.Update(ctx, dept); err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.Get(ctx, id)
}

func (s *DepartmentServiceImpl) Deactivate(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.guardDeactivation(ctx, id); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept.IsActive = false
	if err := s.departmentRepo.Update(ctx, dept); err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.Get(ctx, id)
}

func (s *DepartmentServiceImpl) guardDeactivation(ctx context.Context, id string) error {
	count, err := s.departmentRepo.CountActiveEmployees(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count active employees: %w", err)
	}
	if count > 0 {
		return department.ErrHasActiveEmployees
	}
	return nil
}
