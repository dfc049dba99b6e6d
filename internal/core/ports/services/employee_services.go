package services

import (
	"context"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/dto"
)

// EmployeeSvcFacade covers employee reads and mutations.
type EmployeeSvcFacade interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, employeeID string) error
	BulkUpdateEmployeeStatus(ctx context.Context, employeeIDs []string, status domain.EmploymentStatus) (int64, error)
}
