package shared

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same error code, so that
// errors.Is(err, ErrNotFound) matches errors built with a custom message.
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
	ErrNotFound     = NewDomainError("NOT_FOUND", "Resource not found")
	ErrBadRequest   = NewDomainError("BAD_REQUEST", "Bad request")
	ErrInvalidInput = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrValidation   = NewDomainError("VALIDATION_FAILED", "Validation failed")
	ErrInvalidState = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// NewNotFoundError builds a not-found error naming the entity type,
// e.g. "Couldn't find Merchant with 'id'=42".
func NewNotFoundError(entity string, id any) *DomainError {
	name := cases.Title(language.English).String(entity)
	return NewDomainError(ErrNotFound.Code, fmt.Sprintf("Couldn't find %s with 'id'=%v", name, id))
}

// NewBadRequestError builds a bad-request error with the given message.
func NewBadRequestError(message string) *DomainError {
	return NewDomainError(ErrBadRequest.Code, message)
}

// NewInvalidStateError builds an invalid-state error with the given message.
func NewInvalidStateError(message string) *DomainError {
	return NewDomainError(ErrInvalidState.Code, message)
}
