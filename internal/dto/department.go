package dto

import "github.com/SscSPs/bizdesk/internal/core/domain"

// CreateDepartmentRequest defines the data needed to create a department.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	Code string `json:"code" binding:"required,max=16"`
}

// UpdateDepartmentRequest defines the data allowed for updating a department.
type UpdateDepartmentRequest struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
	Code *string `json:"code" binding:"omitempty,max=16"`
}

func (r UpdateDepartmentRequest) ToPatch() domain.DepartmentPatch {
	return domain.DepartmentPatch{Name: r.Name, Code: r.Code}
}

// ListDepartmentsResponse wraps the list of departments.
type ListDepartmentsResponse struct {
	Departments []domain.Department `json:"departments"`
}
