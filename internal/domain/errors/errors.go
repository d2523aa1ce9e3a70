// Package errors defines the application error contract: a typed
// AppError carrying an HTTP status and a business error code, plus the
// catalogue of predefined errors the services return.
package errors

import (
	"net/http"

	"salepoint/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Record-store errors
	ErrRecordNotFound = NewBaseError(
		http.StatusNotFound,
		"RECORD_NOT_FOUND",
		"Record not found",
		"",
	)

	// ErrPersistFailed marks a failed write of a collection snapshot.
	// Unlike read corruption this is never swallowed: a lost write must
	// reach the caller as an actionable "could not save".
	ErrPersistFailed = NewBaseError(
		http.StatusInternalServerError,
		"PERSIST_FAILED",
		"Could not save changes",
		"",
	)

	// Customer-related errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Customer not found",
		"",
	)

	// Inventory-related errors
	ErrItemNotFound = NewBaseError(
		http.StatusNotFound,
		"ITEM_NOT_FOUND",
		"Inventory item not found",
		"",
	)

	ErrInsufficientStock = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_STOCK",
		"Stock cannot go below zero",
		"",
	)

	// Sale-related errors
	ErrSaleNotFound = NewBaseError(
		http.StatusNotFound,
		"SALE_NOT_FOUND",
		"Sale not found",
		"",
	)

	// Voucher-related errors
	ErrVoucherNotFound = NewBaseError(
		http.StatusNotFound,
		"VOUCHER_NOT_FOUND",
		"Voucher not found",
		"",
	)

	ErrVoucherNotActive = NewBaseError(
		http.StatusConflict,
		"VOUCHER_NOT_ACTIVE",
		"Voucher is not active",
		"",
	)

	ErrVoucherExpired = NewBaseError(
		http.StatusConflict,
		"VOUCHER_EXPIRED",
		"Voucher has expired",
		"",
	)

	// Session-related errors
	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Session has expired, please sign in again",
		"",
	)

	ErrNoSession = NewBaseError(
		http.StatusUnauthorized,
		"NO_SESSION",
		"No active session",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or malformed session token",
		"",
	)

	// Workspace-related errors
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"Business not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// StorageWriteError represents a failed write to the storage medium,
// implementing the AppError interface. It keeps the underlying cause
// so callers can still inspect quota or serialization failures.
type StorageWriteError struct {
	err     error
	details string
}

// NewStorageWriteError creates a storage-write error wrapping cause.
func NewStorageWriteError(err error, details string) AppError {
	return &StorageWriteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageWriteError) Error() string {
	return errors.Wrap(e.err, "storage write failed").Error()
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *StorageWriteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageWriteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageWriteError) ErrorCode() string {
	return "STORAGE_WRITE_FAILED"
}

// Message returns the user-friendly error message
func (e *StorageWriteError) Message() string {
	return "Could not save changes"
}

// Details returns detailed error information
func (e *StorageWriteError) Details() string {
	return e.details
}
