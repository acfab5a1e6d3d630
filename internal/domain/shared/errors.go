package shared

import "strings"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// ValidationError carries every failed rule of one request. The wire
// layer surfaces the full list, joined by newlines in the message.
type ValidationError struct {
	Failures []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return strings.Join(e.Failures, "\n")
}

// NewValidationError wraps rule failures; returns nil when there are none
func NewValidationError(failures []string) error {
	if len(failures) == 0 {
		return nil
	}
	return &ValidationError{Failures: failures}
}

// Common domain errors
var (
	ErrNotFound         = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists    = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput     = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrInvalidSortField = NewDomainError("INVALID_SORT_FIELD", "Ordering field is not sortable")
	ErrInvalidState     = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)
