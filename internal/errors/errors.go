package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized is returned when no valid bearer token accompanies a request.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrForbidden is returned when the token identity may not perform the operation.
	ErrForbidden = errors.New("forbidden access")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrClassNotFound is returned when a referenced class listing does not exist.
	ErrClassNotFound = errors.New("class not found")
	// ErrInvalidPrice is returned when a payment price is negative or unparsable.
	ErrInvalidPrice = errors.New("invalid price")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "UNAUTHORIZED")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrClassNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CLASS_NOT_FOUND")
	case ErrInvalidPrice:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_PRICE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
