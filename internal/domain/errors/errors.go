package errors

import (
	"maps"
	"net/http"
	"sort"
	"strings"

	"lending/internal/errors"
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

// Is lets a WithDetails copy still match its catalogue entry.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Validation errors
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input data",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"The provided id is not valid",
		"",
	)
)

// Not found errors
var (
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"There is no user with the provided id or e-mail",
		"",
	)

	ErrBookNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOK_NOT_FOUND",
		"There is no book with the provided id",
		"",
	)

	ErrLoanNotFound = NewBaseError(
		http.StatusNotFound,
		"LOAN_NOT_FOUND",
		"There is no loan with the provided id",
		"",
	)

	// ErrBorrowedBookMissing signals a user pointing at a book record that no longer exists.
	ErrBorrowedBookMissing = NewBaseError(
		http.StatusNotFound,
		"BORROWED_BOOK_MISSING",
		"The book recorded as borrowed no longer exists",
		"",
	)
)

// Conflict errors
var (
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This e-mail is already registered",
		"",
	)

	ErrBookAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BOOK_ALREADY_EXISTS",
		"A book with this title already exists",
		"",
	)

	ErrNoCopiesAvailable = NewBaseError(
		http.StatusConflict,
		"NO_COPIES_AVAILABLE",
		"There are no copies of this book available",
		"",
	)

	ErrAlreadyBorrowing = NewBaseError(
		http.StatusConflict,
		"ALREADY_BORROWING",
		"Return the book you currently hold before borrowing another one",
		"",
	)

	ErrNoActiveLoan = NewBaseError(
		http.StatusConflict,
		"NO_ACTIVE_LOAN",
		"You do not have a borrowed book to return",
		"",
	)

	ErrLoanAlreadyReturned = NewBaseError(
		http.StatusConflict,
		"LOAN_ALREADY_RETURNED",
		"This loan has already been returned",
		"",
	)

	ErrLoanMismatch = NewBaseError(
		http.StatusConflict,
		"LOAN_MISMATCH",
		"This loan is not your current loan",
		"",
	)

	ErrUserHoldsBook = NewBaseError(
		http.StatusConflict,
		"USER_HOLDS_BOOK",
		"The user must return the borrowed book first",
		"",
	)

	ErrBookHasOpenLoans = NewBaseError(
		http.StatusConflict,
		"BOOK_HAS_OPEN_LOANS",
		"The book still has copies out on loan",
		"",
	)

	ErrAccountAlreadyActive = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_ACTIVE",
		"The account is already active",
		"",
	)
)

// Authentication errors
var (
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Log in to perform this action",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token expired",
		"",
	)

	ErrPasswordChanged = NewBaseError(
		http.StatusUnauthorized,
		"PASSWORD_CHANGED",
		"Your password has changed, log in again to perform this action",
		"",
	)

	ErrSessionEnded = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_ENDED",
		"You are logged out, log in again to perform this action",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect e-mail or password",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_INACTIVE",
		"This account has been deactivated",
		"",
	)

	ErrResetTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"RESET_TOKEN_INVALID",
		"Invalid password reset token",
		"",
	)

	ErrResetTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"RESET_TOKEN_EXPIRED",
		"The time to reset your password already expired",
		"",
	)
)

// Authorization errors
var (
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"You do not have permission to perform this action",
		"",
	)

	ErrLoanNotOwned = NewBaseError(
		http.StatusForbidden,
		"LOAN_NOT_OWNED",
		"This loan belongs to another user",
		"",
	)
)

// Internal errors
var (
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"The operation could not be completed, please retry",
		"",
	)

	ErrNotificationFailed = NewBaseError(
		http.StatusInternalServerError,
		"NOTIFICATION_FAILED",
		"There was an error sending the e-mail",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)
)

// ValidationError is a 400 carrying one message per offending field.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from field -> message pairs
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: maps.Clone(fields)}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.fields[k])
	}

	return "invalid input data: " + strings.Join(parts, "; ")
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the field messages flattened into one line
func (e *ValidationError) Details() string {
	return e.Error()
}

// Fields returns a copy of the per-field messages
func (e *ValidationError) Fields() map[string]string {
	return maps.Clone(e.fields)
}

// Is matches ErrValidationFailed so callers can test for the kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is/As
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
