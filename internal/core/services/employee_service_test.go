package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bizdesk/internal/apperrors"
	"github.com/SscSPs/bizdesk/internal/core/domain"
	portsrepo "github.com/SscSPs/bizdesk/internal/core/ports/repositories"
	"github.com/SscSPs/bizdesk/internal/core/services"
	"github.com/SscSPs/bizdesk/internal/dto"
	"github.com/SscSPs/bizdesk/internal/notify"
	"github.com/SscSPs/bizdesk/internal/roles"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateEmployee_AppliesDefaults(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := services.NewEmployeeService(repo, services.WithNotifier(&notify.Recorder{}), services.WithClock(fixedClock))
	hire := time.Date(2023, 1, 16, 0, 0, 0, 0, time.UTC)

	repo.On("SaveEmployee", mock.Anything, mock.AnythingOfType("domain.Employee")).Return(nil).Once()

	created, err := svc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        "Grace@Navy.test",
		Position:     "Engineer",
		HireDate:     dto.Date{Time: hire},
		Salary:       decimal.RequireFromString("85000"),
		DepartmentID: strPtr(""),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.FullTime, created.EmploymentType)
	assert.Equal(t, domain.EmploymentActive, created.EmploymentStatus)
	assert.Equal(t, domain.USD, created.Currency)
	assert.Equal(t, domain.Monthly, created.PaymentFrequency)
	assert.Equal(t, "grace@navy.test", created.Email)
	assert.Nil(t, created.DepartmentID)
	assert.Equal(t, hire, created.HireDate)
	assert.Equal(t, "Grace Hopper", created.FullName())
}

func TestCreateEmployee_RequiresHireDate(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := services.NewEmployeeService(repo, services.WithNotifier(&notify.Recorder{}))

	_, err := svc.CreateEmployee(context.Background(), dto.CreateEmployeeRequest{
		FirstName: "Grace", LastName: "Hopper", Email: "g@navy.test", Position: "Engineer",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveEmployee", mock.Anything, mock.Anything)
}

func TestUpdateEmployee_RejectsUnknownCurrency(t *testing.T) {
	repo := new(MockEmployeeRepository)
	svc := services.NewEmployeeService(repo, services.WithNotifier(&notify.Recorder{}))
	currency := domain.Currency("BTC")

	err := svc.UpdateEmployee(context.Background(), "e1", dto.UpdateEmployeeRequest{Currency: &currency})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "UpdateEmployee", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBulkUpdateEmployeeStatus(t *testing.T) {
	repo := new(MockEmployeeRepository)
	rec := &notify.Recorder{}
	svc := services.NewEmployeeService(repo, services.WithNotifier(rec), services.WithClock(fixedClock))
	repo.On("UpdateEmployeesStatus", mock.Anything, []string{"e1", "e2"}, domain.EmploymentOnLeave, fixedNow).Return(int64(2), nil).Once()

	n, err := svc.BulkUpdateEmployeeStatus(context.Background(), []string{"e1", "e2"}, domain.EmploymentOnLeave)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	last, _ := rec.Last()
	assert.Equal(t, "2 employee(s) updated successfully", last.Title)
}

func TestCreateDepartment_UppercasesCode(t *testing.T) {
	repo := new(MockDepartmentRepository)
	svc := services.NewDepartmentService(repo, services.WithNotifier(&notify.Recorder{}), services.WithClock(fixedClock))
	repo.On("SaveDepartment", mock.Anything, mock.AnythingOfType("domain.Department")).Return(nil).Once()

	created, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentRequest{Name: " Finance ", Code: "fin"})

	require.NoError(t, err)
	assert.Equal(t, "Finance", created.Name)
	assert.Equal(t, "FIN", created.Code)
	assert.NotEmpty(t, created.DepartmentID)
}

func TestCreateDepartment_DuplicateCode(t *testing.T) {
	repo := new(MockDepartmentRepository)
	rec := &notify.Recorder{}
	svc := services.NewDepartmentService(repo, services.WithNotifier(rec))
	repo.On("SaveDepartment", mock.Anything, mock.AnythingOfType("domain.Department")).Return(apperrors.ErrDuplicate).Once()

	_, err := svc.CreateDepartment(context.Background(), dto.CreateDepartmentRequest{Name: "Finance", Code: "FIN"})

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	last, _ := rec.Last()
	assert.Equal(t, "Failed to create department", last.Title)
}

func TestContainer_DepartmentDeleteRefreshesEmployees(t *testing.T) {
	deptRepo := new(MockDepartmentRepository)
	empRepo := new(MockEmployeeRepository)
	container := services.NewServiceContainer(portsrepo.RepositoryProvider{
		DepartmentRepo: deptRepo,
		EmployeeRepo:   empRepo,
	}, roles.Default(), services.WithNotifier(&notify.Recorder{}))
	ctx := context.Background()

	dept := "d1"
	empRepo.On("ListEmployees", mock.Anything).Return([]domain.Employee{{EmployeeID: "e1", DepartmentID: &dept}}, nil).Once()
	empRepo.On("ListEmployees", mock.Anything).Return([]domain.Employee{{EmployeeID: "e1"}}, nil).Once()
	deptRepo.On("DeleteDepartment", mock.Anything, "d1").Return(nil).Once()

	before, err := container.Employee.ListEmployees(ctx)
	require.NoError(t, err)
	require.NotNil(t, before[0].DepartmentID)

	require.NoError(t, container.Department.DeleteDepartment(ctx, "d1"))

	after, err := container.Employee.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Nil(t, after[0].DepartmentID)
	empRepo.AssertNumberOfCalls(t, "ListEmployees", 2)
}
