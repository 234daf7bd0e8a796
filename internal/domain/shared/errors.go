package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same error code, so errors built with
// a specific message still match the sentinel values below.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrUniquenessViolation = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrOwnershipViolation  = NewDomainError("OWNERSHIP_VIOLATION", "Resource does not belong to the stated owner")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
)

// NotFoundf builds a NOT_FOUND error with a formatted message
func NotFoundf(format string, args ...any) *DomainError {
	return NewDomainError(ErrNotFound.Code, fmt.Sprintf(format, args...))
}

// OwnershipViolationf builds an OWNERSHIP_VIOLATION error with a formatted message
func OwnershipViolationf(format string, args ...any) *DomainError {
	return NewDomainError(ErrOwnershipViolation.Code, fmt.Sprintf(format, args...))
}

// UniquenessViolationf builds an ALREADY_EXISTS error with a formatted message
func UniquenessViolationf(format string, args ...any) *DomainError {
	return NewDomainError(ErrUniquenessViolation.Code, fmt.Sprintf(format, args...))
}
