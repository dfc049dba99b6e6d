package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/bizdesk/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// ListEmployees retrieves every employee ordered by last name, first name.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch, now time.Time) error
	DeleteEmployee(ctx context.Context, employeeID string) error
	UpdateEmployeesStatus(ctx context.Context, employeeIDs []string, status domain.EmploymentStatus, now time.Time) (int64, error)
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
