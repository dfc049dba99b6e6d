package mapping

import (
	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:       d.EmployeeID,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		Phone:            d.Phone,
		Address:          d.Address,
		DateOfBirth:      d.DateOfBirth,
		Gender:           d.Gender,
		DepartmentID:     d.DepartmentID,
		Position:         d.Position,
		EmploymentType:   string(d.EmploymentType),
		EmploymentStatus: string(d.EmploymentStatus),
		HireDate:         d.HireDate,
		Salary:           d.Salary,
		Currency:         string(d.Currency),
		PaymentFrequency: string(d.PaymentFrequency),
		Notes:            d.Notes,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:       m.EmployeeID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          m.Address,
		DateOfBirth:      m.DateOfBirth,
		Gender:           m.Gender,
		DepartmentID:     m.DepartmentID,
		Position:         m.Position,
		EmploymentType:   domain.EmploymentType(m.EmploymentType),
		EmploymentStatus: domain.EmploymentStatus(m.EmploymentStatus),
		HireDate:         m.HireDate,
		Salary:           m.Salary,
		Currency:         domain.Currency(m.Currency),
		PaymentFrequency: domain.PaymentFrequency(m.PaymentFrequency),
		Notes:            m.Notes,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// ToDomainEmployeeSlice converts a slice of model Employees to a slice of domain Employees
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
