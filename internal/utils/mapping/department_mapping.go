package mapping

import (
	"github.com/SscSPs/bizdesk/internal/core/domain"
	"github.com/SscSPs/bizdesk/internal/models"
)

func ToModelDepartment(d domain.Department) models.Department {
	return models.Department(d)
}

func ToDomainDepartment(m models.Department) domain.Department {
	return domain.Department(m)
}

func ToDomainDepartmentSlice(ms []models.Department) []domain.Department {
	ds := make([]domain.Department, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDepartment(m)
	}
	return ds
}
