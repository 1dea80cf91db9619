package errors

import (
	"fmt"
	"net/http"

	"storefront/internal/errors"
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
	// Catalog-related errors
	ErrCatalogEntryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATALOG_ENTRY_NOT_FOUND",
		"Special not found",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"An order must contain at least one item",
		"",
	)

	ErrInvalidDeliveryLocation = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_DELIVERY_LOCATION",
		"Delivery location is not configured correctly",
		"",
	)

	ErrSubmissionTimeout = NewBaseError(
		http.StatusServiceUnavailable,
		"SUBMISSION_TIMEOUT",
		"Order submission timed out, please retry",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
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
)

// UnknownCatalogEntryError is returned when a submitted line item references a
// catalog entry that does not exist. The whole submission is rejected.
type UnknownCatalogEntryError struct {
	CatalogEntryID int64
}

// NewUnknownCatalogEntryError creates an UnknownCatalogEntryError for the given ID.
func NewUnknownCatalogEntryError(id int64) *UnknownCatalogEntryError {
	return &UnknownCatalogEntryError{CatalogEntryID: id}
}

func (e *UnknownCatalogEntryError) Error() string {
	return fmt.Sprintf("unknown catalog entry %d", e.CatalogEntryID)
}

func (e *UnknownCatalogEntryError) HTTPCode() int     { return http.StatusUnprocessableEntity }
func (e *UnknownCatalogEntryError) ErrorCode() string { return "UNKNOWN_CATALOG_ENTRY" }
func (e *UnknownCatalogEntryError) Message() string   { return "Order references a special that does not exist" }

func (e *UnknownCatalogEntryError) Details() string {
	return fmt.Sprintf("catalog_entry_id=%d", e.CatalogEntryID)
}

// InvalidQuantityError is returned when a line item quantity is out of bounds.
type InvalidQuantityError struct {
	CatalogEntryID int64
	Quantity       int
	Min            int
	Max            int
}

// NewInvalidQuantityError creates an InvalidQuantityError.
func NewInvalidQuantityError(catalogEntryID int64, quantity, minQty, maxQty int) *InvalidQuantityError {
	return &InvalidQuantityError{
		CatalogEntryID: catalogEntryID,
		Quantity:       quantity,
		Min:            minQty,
		Max:            maxQty,
	}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %d for catalog entry %d: must be between %d and %d",
		e.Quantity, e.CatalogEntryID, e.Min, e.Max)
}

func (e *InvalidQuantityError) HTTPCode() int     { return http.StatusBadRequest }
func (e *InvalidQuantityError) ErrorCode() string { return "INVALID_QUANTITY" }

func (e *InvalidQuantityError) Message() string {
	return fmt.Sprintf("Quantity must be between %d and %d", e.Min, e.Max)
}

func (e *InvalidQuantityError) Details() string {
	return fmt.Sprintf("catalog_entry_id=%d quantity=%d", e.CatalogEntryID, e.Quantity)
}

// PersistenceError represents a failed write or read against the store, implementing the AppError interface
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError creates a persistence-related error
func NewPersistenceError(err error, details string) AppError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return "Order could not be saved, please retry"
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	return e.details
}
