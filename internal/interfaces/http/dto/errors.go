package dto

import (
	"errors"
	"net/http"

	"github.com/storefront/backend/internal/domain/shared"
)

// MessageInternal is returned for every failure that is not a domain error
const MessageInternal = "Internal server error"

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.ErrNotFound.Code:     http.StatusNotFound,
	shared.ErrBadRequest.Code:   http.StatusBadRequest,
	shared.ErrValidation.Code:   http.StatusUnprocessableEntity,
	shared.ErrInvalidInput.Code: http.StatusUnprocessableEntity,
	shared.ErrInvalidState.Code: http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the status for code, or 500 for unknown codes
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// FromError picks the status and body for err.
// Errors that are not domain errors never leak their text.
func FromError(err error) (int, ErrorResponse) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return GetHTTPStatus(domainErr.Code), ErrorResponse{Message: domainErr.Message}
	}
	return http.StatusInternalServerError, ErrorResponse{Message: MessageInternal}
}
