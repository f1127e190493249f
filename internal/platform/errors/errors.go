package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/household-platform/household-service/internal/domain"
)

// Standard error codes
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeNotFound           = "RESOURCE_NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInsufficientStock  = "INSUFFICIENT_STOCK"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeBadRequest         = "BAD_REQUEST"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// AppError represents an application error with HTTP status and error code
type AppError struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Shortages  []string          `json:"shortages,omitempty"`
	HTTPStatus int               `json:"-"`
	Err        error             `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details map[string]string) *AppError {
	e.Details = details
	return e
}

// WithDetail adds a single detail to the error
func (e *AppError) WithDetail(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// Wrap wraps an existing error
func (e *AppError) Wrap(err error) *AppError {
	e.Err = err
	return e
}

// NewAppError creates a new AppError
func NewAppError(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// ErrValidation creates a validation error
func ErrValidation(message string) *AppError {
	return NewAppError(CodeValidationError, message, http.StatusBadRequest)
}

// ErrValidationWithFields creates a validation error with field details
func ErrValidationWithFields(message string, fields map[string]string) *AppError {
	return ErrValidation(message).WithDetails(fields)
}

// ErrNotFound creates a not found error
func ErrNotFound(resource string) *AppError {
	return NewAppError(CodeNotFound, fmt.Sprintf("%s not found", resource), http.StatusNotFound)
}

// ErrNotFoundWithID creates a not found error with ID
func ErrNotFoundWithID(resource, id string) *AppError {
	return ErrNotFound(resource).WithDetail("id", id)
}

// ErrConflict creates a conflict error
func ErrConflict(message string) *AppError {
	return NewAppError(CodeConflict, message, http.StatusConflict)
}

// ErrInsufficientStock creates a 409 error carrying the shortage list
func ErrInsufficientStock(shortages []string) *AppError {
	appErr := NewAppError(CodeInsufficientStock,
		"missing ingredients: "+strings.Join(shortages, ", "),
		http.StatusConflict)
	appErr.Shortages = shortages
	return appErr
}

// ErrUnauthorized creates an unauthorized error
func ErrUnauthorized(message string) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return NewAppError(CodeUnauthorized, message, http.StatusUnauthorized)
}

// ErrForbidden creates a forbidden error
func ErrForbidden(message string) *AppError {
	if message == "" {
		message = "access denied"
	}
	return NewAppError(CodeForbidden, message, http.StatusForbidden)
}

// ErrInternal creates an internal error
func ErrInternal(message string) *AppError {
	if message == "" {
		message = "an internal error occurred"
	}
	return NewAppError(CodeInternalError, message, http.StatusInternalServerError)
}

// ErrBadRequest creates a bad request error
func ErrBadRequest(message string) *AppError {
	return NewAppError(CodeBadRequest, message, http.StatusBadRequest)
}

// ErrServiceUnavailable creates a service unavailable error
func ErrServiceUnavailable(service string) *AppError {
	return NewAppError(CodeServiceUnavailable, fmt.Sprintf("%s is temporarily unavailable", service), http.StatusServiceUnavailable)
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// MapDomainError maps domain errors to AppErrors with the right HTTP status
func MapDomainError(err error) *AppError {
	if err == nil {
		return nil
	}

	if appErr, ok := AsAppError(err); ok {
		return appErr
	}

	if insErr, ok := domain.AsInsufficientStock(err); ok {
		return ErrInsufficientStock(insErr.Shortages).Wrap(err)
	}

	switch {
	case errors.Is(err, domain.ErrStockItemNotFound):
		return ErrNotFound("stock item").Wrap(err)
	case errors.Is(err, domain.ErrRecipeNotFound):
		return ErrNotFound("recipe").Wrap(err)
	case errors.Is(err, domain.ErrDayPlanNotFound):
		return ErrNotFound("day plan").Wrap(err)
	case errors.Is(err, domain.ErrGoalNotFound):
		return ErrNotFound("savings goal").Wrap(err)
	case errors.Is(err, domain.ErrBillNotFound):
		return ErrNotFound("bill").Wrap(err)
	case errors.Is(err, domain.ErrUserNotFound):
		return ErrNotFound("user").Wrap(err)
	case errors.Is(err, domain.ErrSlotEmpty):
		return ErrValidation("no recipe assigned to this meal slot").Wrap(err)
	case errors.Is(err, domain.ErrIncompatibleUnits):
		return ErrValidation(err.Error()).Wrap(err)
	case errors.Is(err, domain.ErrNegativeStock):
		return ErrConflict(err.Error()).Wrap(err)
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidDate):
		return ErrValidation(err.Error()).Wrap(err)
	default:
		return ErrInternal("").Wrap(err)
	}
}
