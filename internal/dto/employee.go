package dto

import (
	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest is the complete draft of a new employee.
type CreateEmployeeRequest struct {
	FirstName   string  `json:"firstName" binding:"required,max=100"`
	LastName    string  `json:"lastName" binding:"required,max=100"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	DateOfBirth *Date   `json:"dateOfBirth"`
	Gender      *string `json:"gender"`

	DepartmentID     *string                 `json:"departmentID"`
	Position         string                  `json:"position" binding:"required,max=100"`
	EmploymentType   domain.EmploymentType   `json:"employmentType" binding:"omitempty,oneof=full_time part_time contract intern"`
	EmploymentStatus domain.EmploymentStatus `json:"employmentStatus" binding:"omitempty,oneof=active on_leave terminated"`
	HireDate         Date                    `json:"hireDate"`

	Salary           decimal.Decimal         `json:"salary"`
	Currency         domain.Currency         `json:"currency" binding:"omitempty,oneof=USD EUR GBP INR JPY CAD AUD"`
	PaymentFrequency domain.PaymentFrequency `json:"paymentFrequency" binding:"omitempty,oneof=weekly biweekly monthly annually"`

	Notes *string `json:"notes"`
}

// UpdateEmployeeRequest carries a partial employee update.
type UpdateEmployeeRequest struct {
	FirstName        *string                  `json:"firstName" binding:"omitempty,max=100"`
	LastName         *string                  `json:"lastName" binding:"omitempty,max=100"`
	Email            *string                  `json:"email" binding:"omitempty,email"`
	Phone            *string                  `json:"phone"`
	Address          *string                  `json:"address"`
	DateOfBirth      *Date                    `json:"dateOfBirth"`
	Gender           *string                  `json:"gender"`
	DepartmentID     *string                  `json:"departmentID"`
	Position         *string                  `json:"position" binding:"omitempty,max=100"`
	EmploymentType   *domain.EmploymentType   `json:"employmentType" binding:"omitempty,oneof=full_time part_time contract intern"`
	EmploymentStatus *domain.EmploymentStatus `json:"employmentStatus" binding:"omitempty,oneof=active on_leave terminated"`
	HireDate         *Date                    `json:"hireDate"`
	Salary           *decimal.Decimal         `json:"salary"`
	Currency         *domain.Currency         `json:"currency" binding:"omitempty,oneof=USD EUR GBP INR JPY CAD AUD"`
	PaymentFrequency *domain.PaymentFrequency `json:"paymentFrequency" binding:"omitempty,oneof=weekly biweekly monthly annually"`
	Notes            *string                  `json:"notes"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateEmployeeRequest) ToPatch() domain.EmployeePatch {
	return domain.EmployeePatch{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		Address:          r.Address,
		DateOfBirth:      DatePtr(r.DateOfBirth),
		Gender:           r.Gender,
		DepartmentID:     r.DepartmentID,
		Position:         r.Position,
		EmploymentType:   r.EmploymentType,
		EmploymentStatus: r.EmploymentStatus,
		HireDate:         DatePtr(r.HireDate),
		Salary:           r.Salary,
		Currency:         r.Currency,
		PaymentFrequency: r.PaymentFrequency,
		Notes:            r.Notes,
	}
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []domain.Employee `json:"employees"`
}
