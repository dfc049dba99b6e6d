package dto

import "github.com/SscSPs/bizdesk/internal/notify"

// FormSubmission is a raw dialog payload: every field as typed.
// ID selects the record being edited; without it the dialog creates one.
type FormSubmission struct {
	ID     *string           `json:"id"`
	Fields map[string]string `json:"fields" binding:"required"`
}

// InlineDepartmentRequest creates a department from inside the employee dialog.
// Both fields are checked by the dialog, not by binding.
type InlineDepartmentRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// InlineDepartmentResponse reports the department adopted by the draft.
type InlineDepartmentResponse struct {
	DepartmentID  string                `json:"departmentID,omitempty"`
	Notifications []notify.Notification `json:"notifications"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error         string                `json:"error"`
	Notifications []notify.Notification `json:"notifications,omitempty"`
}
