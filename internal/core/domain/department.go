package domain

import "time"

// Department is the lightweight organisational unit employees belong to.
type Department struct {
	DepartmentID string    `json:"departmentID"`
	Name         string    `json:"name"`
	Code         string    `json:"code"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DepartmentPatch carries the fields of a partial department update.
type DepartmentPatch struct {
	Name *string
	Code *string
}

func (p DepartmentPatch) IsEmpty() bool {
	return p.Name == nil && p.Code == nil
}
