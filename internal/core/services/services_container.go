package services

import (
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
)

// NewServiceContainer wires every service against the repositories.
// The same options are applied to each service.
func NewServiceContainer(repos portsrepo.RepositoryProvider, roles RoleCatalog, options ...ServiceOption) *portssvc.ServiceContainer {
	employees := newEmployeeService(repos.EmployeeRepo, options...)
	departments := newDepartmentService(repos.DepartmentRepo, options...)
	departments.dependents = append(departments.dependents, employees.invalidate)
	users := newUserService(repos.UserRepo, roles, options...)
	auth := newAuthService(repos.UserRepo, roles, options...)
	auth.onSignup = append(auth.onSignup, users.invalidate)

	return &portssvc.ServiceContainer{
		Auth:       auth,
		Account:    NewAccountService(repos.AccountRepo, options...),
		User:       users,
		Vendor:     NewVendorService(repos.VendorRepo, options...),
		Department: departments,
		Employee:   employees,
	}
}
