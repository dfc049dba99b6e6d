package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/querycache"
	"github.com/google/uuid"
)

type departmentService struct {
	BaseService
	departmentRepo portsrepo.DepartmentRepositoryFacade
	cache          *querycache.Cache[[]domain.Department]
	// dependents are invalidated along with departments; employees hold a nullable department reference.
	dependents []func()
}

// NewDepartmentService creates the department service.
func NewDepartmentService(repo portsrepo.DepartmentRepositoryFacade, options ...ServiceOption) portssvc.DepartmentSvcFacade {
	return newDepartmentService(repo, options...)
}

func newDepartmentService(repo portsrepo.DepartmentRepositoryFacade, options ...ServiceOption) *departmentService {
	base := newBaseService(options...)
	return &departmentService{
		BaseService:    base,
		departmentRepo: repo,
		cache:          newCache[[]domain.Department](base),
	}
}

var _ portssvc.DepartmentSvcFacade = (*departmentService)(nil)

func (s *departmentService) invalidate() {
	s.cache.Invalidate(domain.CollectionDepartments)
}

func (s *departmentService) invalidateAll() {
	s.invalidate()
	for _, dep := range s.dependents {
		dep()
	}
}

func (s *departmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	departments, err := s.cache.Fetch(ctx, domain.CollectionDepartments, func(ctx context.Context) ([]domain.Department, error) {
		departments, err := s.departmentRepo.ListDepartments(ctx)
		if err != nil {
			return nil, err
		}
		if departments == nil {
			departments = []domain.Department{}
		}
		return departments, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list departments from repository")
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	s.LogDebug(ctx, "Departments listed successfully", slog.Int("count", len(departments)))
	return departments, nil
}

func (s *departmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	var created domain.Department
	err := s.runMutation(ctx, mutation{failure: "Failed to create department", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		name, err := requireText("name", req.Name)
		if err != nil {
			return "", err
		}
		code, err := requireText("code", req.Code)
		if err != nil {
			return "", err
		}
		created = domain.Department{
			DepartmentID: uuid.NewString(),
			Name:         name,
			Code:         strings.ToUpper(code),
			CreatedAt:    s.now(),
		}
		if err := s.departmentRepo.SaveDepartment(ctx, created); err != nil {
			return "", err
		}
		return "Department created successfully", nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *departmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest) error {
	return s.runMutation(ctx, mutation{failure: "Failed to update department", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		patch := req.ToPatch()
		if patch.IsEmpty() {
			return "", validationErr("no fields to update")
		}
		patch.Name = trimPtr(patch.Name)
		if patch.Name != nil && *patch.Name == "" {
			return "", validationErr("name cannot be blank")
		}
		if patch.Code != nil {
			code := strings.ToUpper(strings.TrimSpace(*patch.Code))
			if code == "" {
				return "", validationErr("code cannot be blank")
			}
			patch.Code = &code
		}
		if err := s.departmentRepo.UpdateDepartment(ctx, departmentID, patch); err != nil {
			return "", err
		}
		return "Department updated successfully", nil
	})
}

func (s *departmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	return s.runMutation(ctx, mutation{failure: "Failed to delete department", invalidate: []func(){s.invalidateAll}}, func(ctx context.Context) (string, error) {
		if err := s.departmentRepo.DeleteDepartment(ctx, departmentID); err != nil {
			return "", err
		}
		return "Department deleted successfully", nil
	})
}
