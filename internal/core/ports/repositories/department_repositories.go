package repositories

import (
	"context"

	"github.com/SscSPs/bizdesk/internal/core/domain"
)

// DepartmentReader defines read operations for department data
type DepartmentReader interface {
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error)
}

// DepartmentWriter defines write operations for department data
type DepartmentWriter interface {
	SaveDepartment(ctx context.Context, department domain.Department) error
	UpdateDepartment(ctx context.Context, departmentID string, patch domain.DepartmentPatch) error
	DeleteDepartment(ctx context.Context, departmentID string) error
}

// DepartmentRepositoryFacade combines all department-related repository interfaces
type DepartmentRepositoryFacade interface {
	DepartmentReader
	DepartmentWriter
}
