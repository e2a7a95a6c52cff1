// Package errors provides the application error type used at the HTTP edge.
// Service code returns AppError values so responses stay consistent and
// never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, optional detail list and
// optional internal cause.
type AppError struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Details    []string `json:"details,omitempty"`
	StatusCode int      `json:"-"`
	Internal   error    `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches AppErrors by code so wrapped copies compare equal to their sentinel.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// WithDetails creates a new AppError carrying a list of field-level messages.
func WithDetails(sentinel *AppError, details []string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Details:    append([]string(nil), details...),
		StatusCode: sentinel.StatusCode,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized        = &AppError{Code: "UNAUTHORIZED", Message: "No autorizado", StatusCode: http.StatusUnauthorized}
	ErrForbidden           = &AppError{Code: "FORBIDDEN", Message: "Acceso denegado", StatusCode: http.StatusForbidden}
	ErrOAuthStateMismatch  = &AppError{Code: "OAUTH_STATE_MISMATCH", Message: "Estado de autenticación inválido", StatusCode: http.StatusBadRequest}
	ErrOAuthExchangeFailed = &AppError{Code: "OAUTH_EXCHANGE_FAILED", Message: "No se pudo completar el inicio de sesión con GitHub", StatusCode: http.StatusBadGateway}
	ErrOAuthNotConfigured  = &AppError{Code: "OAUTH_NOT_CONFIGURED", Message: "El inicio de sesión con GitHub no está configurado", StatusCode: http.StatusServiceUnavailable}
)

// General errors.
var (
	ErrInvalidInput     = &AppError{Code: "INVALID_INPUT", Message: "Datos inválidos", StatusCode: http.StatusBadRequest}
	ErrValidation       = &AppError{Code: "VALIDATION_ERROR", Message: "Datos inválidos", StatusCode: http.StatusBadRequest}
	ErrNotFound         = &AppError{Code: "NOT_FOUND", Message: "Recurso no encontrado", StatusCode: http.StatusNotFound}
	ErrMethodNotAllowed = &AppError{Code: "METHOD_NOT_ALLOWED", Message: "Método no permitido", StatusCode: http.StatusMethodNotAllowed}
	ErrInternalServer   = &AppError{Code: "INTERNAL_ERROR", Message: "Error interno del servidor", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound  = &AppError{Code: "USER_NOT_FOUND", Message: "Usuario no encontrado", StatusCode: http.StatusNotFound}
	ErrNothingToSave = &AppError{Code: "INVALID_INPUT", Message: "No se proporcionaron datos para actualizar", StatusCode: http.StatusBadRequest}
)
