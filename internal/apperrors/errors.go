package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidReference indicates that a referenced entity (role, department, parent account) does not resolve.
var ErrInvalidReference = errors.New("invalid reference")

// ErrBackend wraps opaque failures coming from the data store.
var ErrBackend = errors.New("backend failure")

// ErrUnauthorized indicates that no authenticated session is present.
var ErrUnauthorized = errors.New("unauthorized")

// Auth specific errors. They wrap the generic kinds so callers can match either.
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrNotFound)
	ErrAccountInactive    = errors.New("account is inactive")
	ErrEmailAlreadyExists = fmt.Errorf("%w: email already registered", ErrDuplicate)
	ErrInvalidRole        = fmt.Errorf("%w: role does not exist", ErrInvalidReference)
)

// AppError carries an HTTP-ish status code alongside the underlying error.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// BackendError is an opaque passthrough of a data store failure.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrBackend) match any BackendError.
func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

// Backend wraps err as a BackendError. Nil stays nil.
func Backend(op string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Op: op, Err: err}
}

// Message returns the text shown to users for err. Backend failures report the
// data store's own message without the operation prefix.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var be *BackendError
	if errors.As(err, &be) {
		return be.Err.Error()
	}
	return err.Error()
}
