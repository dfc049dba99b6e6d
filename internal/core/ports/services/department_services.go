package services

import (
	"context"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/dto"
)

// DepartmentSvcFacade covers department reads and mutations.
type DepartmentSvcFacade interface {
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, departmentID string) error
}
