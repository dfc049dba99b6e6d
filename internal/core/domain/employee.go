package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentType describes the contractual arrangement of an employee.
type EmploymentType string

const (
	FullTime   EmploymentType = "full_time"
	PartTime   EmploymentType = "part_time"
	Contract   EmploymentType = "contract"
	Internship EmploymentType = "intern"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case FullTime, PartTime, Contract, Internship:
		return true
	}
	return false
}

// EmploymentStatus is the current state of employment.
type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "active"
	EmploymentOnLeave    EmploymentStatus = "on_leave"
	EmploymentTerminated EmploymentStatus = "terminated"
)

func (s EmploymentStatus) Valid() bool {
	switch s {
	case EmploymentActive, EmploymentOnLeave, EmploymentTerminated:
		return true
	}
	return false
}

// Currency is the ISO code salaries are paid in.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	INR Currency = "INR"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
)

func (c Currency) Valid() bool {
	switch c {
	case USD, EUR, GBP, INR, JPY, CAD, AUD:
		return true
	}
	return false
}

// PaymentFrequency is how often salary is paid out.
type PaymentFrequency string

const (
	Weekly   PaymentFrequency = "weekly"
	Biweekly PaymentFrequency = "biweekly"
	Monthly  PaymentFrequency = "monthly"
	Annually PaymentFrequency = "annually"
)

func (f PaymentFrequency) Valid() bool {
	switch f {
	case Weekly, Biweekly, Monthly, Annually:
		return true
	}
	return false
}

// Employee is an HR record. Personal, employment and compensation fields
// are kept flat to mirror the employees table.
type Employee struct {
	EmployeeID string `json:"employeeID"`

	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	Phone       *string    `json:"phone,omitempty"`
	Address     *string    `json:"address,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Gender      *string    `json:"gender,omitempty"`

	DepartmentID     *string          `json:"departmentID,omitempty"`
	Position         string           `json:"position"`
	EmploymentType   EmploymentType   `json:"employmentType"`
	EmploymentStatus EmploymentStatus `json:"employmentStatus"`
	HireDate         time.Time        `json:"hireDate"`

	Salary           decimal.Decimal  `json:"salary"`
	Currency         Currency         `json:"currency"`
	PaymentFrequency PaymentFrequency `json:"paymentFrequency"`

	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// EmployeePatch carries the fields of a partial employee update.
type EmployeePatch struct {
	FirstName        *string
	LastName         *string
	Email            *string
	Phone            *string
	Address          *string
	DateOfBirth      *time.Time
	Gender           *string
	DepartmentID     *string
	Position         *string
	EmploymentType   *EmploymentType
	EmploymentStatus *EmploymentStatus
	HireDate         *time.Time
	Salary           *decimal.Decimal
	Currency         *Currency
	PaymentFrequency *PaymentFrequency
	Notes            *string
}

func (p EmployeePatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.Phone == nil &&
		p.Address == nil && p.DateOfBirth == nil && p.Gender == nil && p.DepartmentID == nil &&
		p.Position == nil && p.EmploymentType == nil && p.EmploymentStatus == nil &&
		p.HireDate == nil && p.Salary == nil && p.Currency == nil && p.PaymentFrequency == nil &&
		p.Notes == nil
}
