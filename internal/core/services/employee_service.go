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

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	cache        *querycache.Cache[[]domain.Employee]
}

// NewEmployeeService creates the employee service.
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, options ...ServiceOption) portssvc.EmployeeSvcFacade {
	return newEmployeeService(repo, options...)
}

func newEmployeeService(repo portsrepo.EmployeeRepositoryFacade, options ...ServiceOption) *employeeService {
	base := newBaseService(options...)
	return &employeeService{
		BaseService:  base,
		employeeRepo: repo,
		cache:        newCache[[]domain.Employee](base),
	}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) invalidate() {
	s.cache.Invalidate(domain.CollectionEmployees)
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.cache.Fetch(ctx, domain.CollectionEmployees, func(ctx context.Context) ([]domain.Employee, error) {
		employees, err := s.employeeRepo.ListEmployees(ctx)
		if err != nil {
			return nil, err
		}
		if employees == nil {
			employees = []domain.Employee{}
		}
		return employees, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees from repository")
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	s.LogDebug(ctx, "Employees listed successfully", slog.Int("count", len(employees)))
	return employees, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	var created domain.Employee
	err := s.runMutation(ctx, mutation{failure: "Failed to create employee", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		first, err := requireText("first name", req.FirstName)
		if err != nil {
			return "", err
		}
		last, err := requireText("last name", req.LastName)
		if err != nil {
			return "", err
		}
		email, err := requireText("email", req.Email)
		if err != nil {
			return "", err
		}
		position, err := requireText("position", req.Position)
		if err != nil {
			return "", err
		}
		if req.HireDate.IsZero() {
			return "", validationErr("hire date is required")
		}
		if req.Salary.IsNegative() {
			return "", validationErr("salary cannot be negative")
		}

		employmentType := req.EmploymentType
		if employmentType == "" {
			employmentType = domain.FullTime
		}
		employmentStatus := req.EmploymentStatus
		if employmentStatus == "" {
			employmentStatus = domain.EmploymentActive
		}
		currency := req.Currency
		if currency == "" {
			currency = domain.USD
		}
		frequency := req.PaymentFrequency
		if frequency == "" {
			frequency = domain.Monthly
		}
		if err := validateEmploymentEnums(&employmentType, &employmentStatus, &currency, &frequency); err != nil {
			return "", err
		}

		now := s.now()
		created = domain.Employee{
			EmployeeID:       uuid.NewString(),
			FirstName:        first,
			LastName:         last,
			Email:            strings.ToLower(email),
			Phone:            blankToNil(req.Phone),
			Address:          blankToNil(req.Address),
			DateOfBirth:      dto.DatePtr(req.DateOfBirth),
			Gender:           blankToNil(req.Gender),
			DepartmentID:     blankToNil(req.DepartmentID),
			Position:         position,
			EmploymentType:   employmentType,
			EmploymentStatus: employmentStatus,
			HireDate:         req.HireDate.Time,
			Salary:           req.Salary,
			Currency:         currency,
			PaymentFrequency: frequency,
			Notes:            blankToNil(req.Notes),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.employeeRepo.SaveEmployee(ctx, created); err != nil {
			return "", err
		}
		return "Employee created successfully", nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) error {
	return s.runMutation(ctx, mutation{failure: "Failed to update employee", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		patch := req.ToPatch()
		if patch.IsEmpty() {
			return "", validationErr("no fields to update")
		}
		for field, v := range map[string]**string{
			"first name": &patch.FirstName,
			"last name":  &patch.LastName,
			"email":      &patch.Email,
			"position":   &patch.Position,
		} {
			*v = trimPtr(*v)
			if *v != nil && **v == "" {
				return "", validationErr("%s cannot be blank", field)
			}
		}
		patch.Email = lowerPtr(patch.Email)
		patch.Phone = trimPtr(patch.Phone)
		patch.Address = trimPtr(patch.Address)
		patch.Gender = trimPtr(patch.Gender)
		patch.Notes = trimPtr(patch.Notes)
		patch.DepartmentID = trimPtr(patch.DepartmentID)
		if patch.Salary != nil && patch.Salary.IsNegative() {
			return "", validationErr("salary cannot be negative")
		}
		if err := validateEmploymentEnums(patch.EmploymentType, patch.EmploymentStatus, patch.Currency, patch.PaymentFrequency); err != nil {
			return "", err
		}
		if err := s.employeeRepo.UpdateEmployee(ctx, employeeID, patch, s.now()); err != nil {
			return "", err
		}
		return "Employee updated successfully", nil
	})
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	return s.runMutation(ctx, mutation{failure: "Failed to delete employee", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
			return "", err
		}
		return "Employee deleted successfully", nil
	})
}

func (s *employeeService) BulkUpdateEmployeeStatus(ctx context.Context, employeeIDs []string, status domain.EmploymentStatus) (int64, error) {
	var n int64
	err := s.runMutation(ctx, mutation{failure: "Failed to update employees", invalidate: []func(){s.invalidate}}, func(ctx context.Context) (string, error) {
		if !status.Valid() {
			return "", validationErr("unknown employment status %q", status)
		}
		ids, err := uniqueIDs(employeeIDs)
		if err != nil {
			return "", err
		}
		n, err = s.employeeRepo.UpdateEmployeesStatus(ctx, ids, status, s.now())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d employee(s) updated successfully", n), nil
	})
	return n, err
}

// validateEmploymentEnums checks every non-nil enum.
func validateEmploymentEnums(t *domain.EmploymentType, st *domain.EmploymentStatus, c *domain.Currency, f *domain.PaymentFrequency) error {
	switch {
	case t != nil && !t.Valid():
		return validationErr("unknown employment type %q", *t)
	case st != nil && !st.Valid():
		return validationErr("unknown employment status %q", *st)
	case c != nil && !c.Valid():
		return validationErr("unknown currency %q", *c)
	case f != nil && !f.Valid():
		return validationErr("unknown payment frequency %q", *f)
	}
	return nil
}
