package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, accountID string, patch domain.AccountPatch, userID string, now time.Time) error {
	return m.Called(ctx, accountID, patch, userID, now).Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockAccountRepository) DeleteAccounts(ctx context.Context, accountIDs []string) (int64, error) {
	args := m.Called(ctx, accountIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccountsStatus(ctx context.Context, accountIDs []string, status domain.AccountStatus, userID string, now time.Time) (int64, error) {
	args := m.Called(ctx, accountIDs, status, userID, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindProfiles(ctx context.Context, limit int) ([]domain.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) FindRoleAssignments(ctx context.Context, userIDs []string) (map[string]domain.RoleType, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.RoleType), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, userID string, patch domain.UserPatch, now time.Time) error {
	return m.Called(ctx, userID, patch, now).Error(0)
}

func (m *MockUserRepository) RecordLogin(ctx context.Context, userID string, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

func (m *MockUserRepository) UpsertUserRole(ctx context.Context, userID string, role domain.RoleType, now time.Time) error {
	return m.Called(ctx, userID, role, now).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserRepository) DeleteUsers(ctx context.Context, userIDs []string) (int64, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateUsersStatus(ctx context.Context, userIDs []string, status domain.UserStatus, now time.Time) (int64, error) {
	args := m.Called(ctx, userIDs, status, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockVendorRepository is a mock type for the VendorRepositoryFacade interface
type MockVendorRepository struct {
	mock.Mock
}

func (m *MockVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}

func (m *MockVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *MockVendorRepository) UpdateVendor(ctx context.Context, vendorID string, patch domain.VendorPatch, now time.Time) error {
	return m.Called(ctx, vendorID, patch, now).Error(0)
}

func (m *MockVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	return m.Called(ctx, vendorID).Error(0)
}

func (m *MockVendorRepository) DeleteVendors(ctx context.Context, vendorIDs []string) (int64, error) {
	args := m.Called(ctx, vendorIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVendorRepository) UpdateVendorsStatus(ctx context.Context, vendorIDs []string, status domain.VendorStatus, now time.Time) (int64, error) {
	args := m.Called(ctx, vendorIDs, status, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockDepartmentRepository is a mock type for the DepartmentRepositoryFacade interface
type MockDepartmentRepository struct {
	mock.Mock
}

func (m *MockDepartmentRepository) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) FindDepartmentByID(ctx context.Context, departmentID string) (*domain.Department, error) {
	args := m.Called(ctx, departmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}

func (m *MockDepartmentRepository) SaveDepartment(ctx context.Context, department domain.Department) error {
	return m.Called(ctx, department).Error(0)
}

func (m *MockDepartmentRepository) UpdateDepartment(ctx context.Context, departmentID string, patch domain.DepartmentPatch) error {
	return m.Called(ctx, departmentID, patch).Error(0)
}

func (m *MockDepartmentRepository) DeleteDepartment(ctx context.Context, departmentID string) error {
	return m.Called(ctx, departmentID).Error(0)
}

// MockEmployeeRepository is a mock type for the EmployeeRepositoryFacade interface
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch, now time.Time) error {
	return m.Called(ctx, employeeID, patch, now).Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	return m.Called(ctx, employeeID).Error(0)
}

func (m *MockEmployeeRepository) UpdateEmployeesStatus(ctx context.Context, employeeIDs []string, status domain.EmploymentStatus, now time.Time) (int64, error) {
	args := m.Called(ctx, employeeIDs, status, now)
	return args.Get(0).(int64), args.Error(1)
}
