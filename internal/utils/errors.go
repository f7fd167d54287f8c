package utils

import "net/http"

// AppError is an error with an associated HTTP status code. Handlers map it
// directly to a JSON error response; anything else becomes a generic 500.
type AppError struct {
	StatusCode int
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Message: message}
}

// NewUnprocessableError is used when the request was well-formed but the
// content could not be processed, e.g. the scanned image is not a medicine.
func NewUnprocessableError(message string) *AppError {
	return &AppError{StatusCode: http.StatusUnprocessableEntity, Message: message}
}

func NewTooManyRequestsError(message string) *AppError {
	return &AppError{StatusCode: http.StatusTooManyRequests, Message: message}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Message: message}
}
