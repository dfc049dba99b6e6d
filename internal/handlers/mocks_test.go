package handlers_test

import (
	"context"

	"github.com/SscSPs/bizdesk/internal/core/domain"
	portssvc "github.com/SscSPs/bizdesk/internal/core/ports/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/session"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, store *session.Store, email, password string) error {
	return m.Called(ctx, store, email, password).Error(0)
}
func (m *MockAuthService) Signup(ctx context.Context, store *session.Store, email, password, name, roleID string) error {
	return m.Called(ctx, store, email, password, name, roleID).Error(0)
}
func (m *MockAuthService) Logout(ctx context.Context, store *session.Store) error {
	return m.Called(ctx, store).Error(0)
}
func (m *MockAuthService) ResetPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *MockAuthService) Restore(ctx context.Context, store *session.Store) (bool, error) {
	args := m.Called(ctx, store)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) error {
	return m.Called(ctx, accountID, req, userID).Error(0)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	return m.Called(ctx, accountID).Error(0)
}
func (m *MockAccountService) BulkDeleteAccounts(ctx context.Context, accountIDs []string) (int64, error) {
	args := m.Called(ctx, accountIDs)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAccountService) BulkUpdateAccountStatus(ctx context.Context, accountIDs []string, status domain.AccountStatus, userID string) (int64, error) {
	args := m.Called(ctx, accountIDs, status, userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}
func (m *MockUserService) UpdateUserRole(ctx context.Context, userID string, role domain.RoleType) error {
	return m.Called(ctx, userID, role).Error(0)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
func (m *MockUserService) BulkDeleteUsers(ctx context.Context, userIDs []string) (int64, error) {
	args := m.Called(ctx, userIDs)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserService) BulkUpdateUserStatus(ctx context.Context, userIDs []string, status domain.UserStatus) (int64, error) {
	args := m.Called(ctx, userIDs, status)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock VendorService ---
type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}
func (m *MockVendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest) (*domain.Vendor, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}
func (m *MockVendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest) error {
	return m.Called(ctx, vendorID, req).Error(0)
}
func (m *MockVendorService) DeleteVendor(ctx context.Context, vendorID string) error {
	return m.Called(ctx, vendorID).Error(0)
}
func (m *MockVendorService) BulkDeleteVendors(ctx context.Context, vendorIDs []string) (int64, error) {
	args := m.Called(ctx, vendorIDs)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockVendorService) BulkUpdateVendorStatus(ctx context.Context, vendorIDs []string, status domain.VendorStatus) (int64, error) {
	args := m.Called(ctx, vendorIDs, status)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.VendorSvcFacade = (*MockVendorService)(nil)

// --- Mock DepartmentService ---
type MockDepartmentService struct {
	mock.Mock
}

func (m *MockDepartmentService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}
func (m *MockDepartmentService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Department), args.Error(1)
}
func (m *MockDepartmentService) UpdateDepartment(ctx context.Context, departmentID string, req dto.UpdateDepartmentRequest) error {
	return m.Called(ctx, departmentID, req).Error(0)
}
func (m *MockDepartmentService) DeleteDepartment(ctx context.Context, departmentID string) error {
	return m.Called(ctx, departmentID).Error(0)
}

var _ portssvc.DepartmentSvcFacade = (*MockDepartmentService)(nil)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) error {
	return m.Called(ctx, employeeID, req).Error(0)
}
func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	return m.Called(ctx, employeeID).Error(0)
}
func (m *MockEmployeeService) BulkUpdateEmployeeStatus(ctx context.Context, employeeIDs []string, status domain.EmploymentStatus) (int64, error) {
	args := m.Called(ctx, employeeIDs, status)
	return args.Get(0).(int64), args.Error(1)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)
