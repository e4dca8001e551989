package utils

import "net/http"

// AppError is a domain error that already knows its HTTP status. Services
// return these; anything else reaching the responder becomes a 500.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message}
}

// Conflict reports a duplicate unique field. The source API surfaces these
// as plain 400s rather than 409s, so that is kept.
func Conflict(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func BadRequest(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message}
}
