package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidState       = errors.New("invalid state")
	ErrConflict           = errors.New("integrity conflict")
	ErrRegistrationClosed = errors.New("registration closed")
	ErrNotEligible        = errors.New("not eligible to submit")
	ErrTeamFull           = errors.New("team is full")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// NewError wraps a sentinel error with a user-facing message, picking the
// HTTP status from the sentinel.
func NewError(message string, err error) *AppError {
	return NewAppError(statusOf(err), message, err)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotEligible), errors.Is(err, ErrInvalidState), errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrRegistrationClosed), errors.Is(err, ErrTeamFull):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// knownSentinels lists the domain errors the HTTP layer maps to statuses.
var knownSentinels = []error{
	ErrNotFound, ErrAlreadyExists, ErrInvalidInput, ErrBadRequest,
	ErrUnauthorized, ErrForbidden, ErrInvalidCredentials, ErrTokenExpired,
	ErrInvalidState, ErrConflict, ErrRegistrationClosed, ErrNotEligible,
	ErrTeamFull, ErrInvalidTransition,
}

// FromError converts any error into an AppError: AppErrors pass through,
// known sentinels get their mapped status, everything else becomes a 500.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	for _, sentinel := range knownSentinels {
		if errors.Is(err, sentinel) {
			return NewError(err.Error(), sentinel)
		}
	}
	return InternalError(err)
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, message, ErrConflict)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
