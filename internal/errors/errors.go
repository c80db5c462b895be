// Package errors defines the structured error taxonomy of the timeclock
// engine. Every error a caller can act on carries an ErrorCode which
// distinguishes retryable conditions (insufficient_funds, transaction,
// timeout) from terminal ones.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a worker, job or log had no matching record.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates a collision with existing state, e.g. a
	// second Start while the worker already has a running timer.
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInvalidState indicates a transition applied to a log whose
	// status does not permit it, e.g. approving an ACTIVE log.
	ErrCodeInvalidState ErrorCode = "invalid_state"
	// ErrCodeInsufficientFunds indicates the job's escrow balance is below
	// the log's cost. Recoverable: the caller may retry after a top-up.
	ErrCodeInsufficientFunds ErrorCode = "insufficient_funds"
	// ErrCodeForbidden indicates the actor is not entitled to the operation.
	ErrCodeForbidden ErrorCode = "forbidden"
	// ErrCodeTransaction indicates a settlement transaction could not be
	// committed and was rolled back in full. Safe to retry.
	ErrCodeTransaction ErrorCode = "transaction"
	// ErrCodeForeignKey indicates a foreign key constraint violation.
	ErrCodeForeignKey ErrorCode = "foreign_key"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError is a structured application error with a code, message, and
// optional cause. It supports errors.Is and errors.As through Unwrap.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: message}
}

// Conflictf creates a new Conflict error with formatted message.
func Conflictf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeConflict, Message: fmt.Sprintf(format, args...)}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Field: field}
}

// InvalidState creates a new InvalidState error.
func InvalidState(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidState, Message: message}
}

// InvalidStatef creates a new InvalidState error with formatted message.
func InvalidStatef(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInvalidState, Message: fmt.Sprintf(format, args...)}
}

// InsufficientFunds creates a new InsufficientFunds error.
func InsufficientFunds(message string) *AppError {
	return &AppError{Code: ErrCodeInsufficientFunds, Message: message}
}

// InsufficientFundsf creates a new InsufficientFunds error with formatted message.
func InsufficientFundsf(format string, args ...any) *AppError {
	return &AppError{Code: ErrCodeInsufficientFunds, Message: fmt.Sprintf(format, args...)}
}

// Forbidden creates a new Forbidden error.
func Forbidden(message string) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...), Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsConflict checks if an error is a Conflict error.
func IsConflict(err error) bool { return isCode(err, ErrCodeConflict) }

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// IsInvalidState checks if an error is an InvalidState error.
func IsInvalidState(err error) bool { return isCode(err, ErrCodeInvalidState) }

// IsInsufficientFunds checks if an error is an InsufficientFunds error.
func IsInsufficientFunds(err error) bool { return isCode(err, ErrCodeInsufficientFunds) }

// IsForbidden checks if an error is a Forbidden error.
func IsForbidden(err error) bool { return isCode(err, ErrCodeForbidden) }

// IsTransaction checks if an error is a Transaction error.
func IsTransaction(err error) bool { return isCode(err, ErrCodeTransaction) }

// IsTimeout checks if an error is a Timeout error.
func IsTimeout(err error) bool { return isCode(err, ErrCodeTimeout) }

// Retryable reports whether the caller may safely retry the failed
// operation. Approval retries are idempotent, so transaction rollbacks,
// balance shortfalls and timeouts are all retry-worthy.
func Retryable(err error) bool {
	switch GetCode(err) {
	case ErrCodeInsufficientFunds, ErrCodeTransaction, ErrCodeTimeout:
		return true
	default:
		return false
	}
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}
