package models

import "time"

// Department is a row of the departments table.
type Department struct {
	DepartmentID string    `db:"department_id"`
	Name         string    `db:"name"`
	Code         string    `db:"code"`
	CreatedAt    time.Time `db:"created_at"`
}
