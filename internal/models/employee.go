package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is a row of the employees table.
type Employee struct {
	EmployeeID       string          `db:"employee_id"`
	FirstName        string          `db:"first_name"`
	LastName         string          `db:"last_name"`
	Email            string          `db:"email"`
	Phone            *string         `db:"phone"`
	Address          *string         `db:"address"`
	DateOfBirth      *time.Time      `db:"date_of_birth"`
	Gender           *string         `db:"gender"`
	DepartmentID     *string         `db:"department_id"`
	Position         string          `db:"position"`
	EmploymentType   string          `db:"employment_type"`
	EmploymentStatus string          `db:"employment_status"`
	HireDate         time.Time       `db:"hire_date"`
	Salary           decimal.Decimal `db:"salary"`
	Currency         string          `db:"currency"`
	PaymentFrequency string          `db:"payment_frequency"`
	Notes            *string         `db:"notes"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}
