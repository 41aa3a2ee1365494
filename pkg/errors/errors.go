package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for consistent handling across adapters

type ErrorType int

// Domain errors - business rules and input validation
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypeAlreadyExists

	// Upstream weather API errors
	ErrorTypeTransport
	ErrorTypeRemote
	ErrorTypeDecode

	// Infrastructure errors
	ErrorTypeDatabase
	ErrorTypeCache

	// System/Configuration errors
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypeAlreadyExists:
		return "ALREADY_EXISTS_ERROR"
	case ErrorTypeTransport:
		return "TRANSPORT_ERROR"
	case ErrorTypeRemote:
		return "REMOTE_ERROR"
	case ErrorTypeDecode:
		return "DECODE_ERROR"
	case ErrorTypeDatabase:
		return "DATABASE_ERROR"
	case ErrorTypeCache:
		return "CACHE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// AppError carries a category, a human readable message and an optional cause.
// StatusCode is only set for remote errors and holds the upstream HTTP status.
type AppError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

func NewAlreadyExistsError(message string) *AppError {
	return New(ErrorTypeAlreadyExists, message)
}

// Upstream Error Constructors

// NewTransportError reports that the request never produced an HTTP response.
func NewTransportError(message string, cause error) *AppError {
	return Wrap(ErrorTypeTransport, message, cause)
}

// NewRemoteError reports a non-2xx upstream response. The message is the
// server-provided one when available.
func NewRemoteError(statusCode int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("HTTP Error - status %d", statusCode)
	}
	return &AppError{
		Type:       ErrorTypeRemote,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewDecodeError reports a 2xx body that does not match the expected shape.
func NewDecodeError(details string, cause error) *AppError {
	return Wrap(ErrorTypeDecode, details, cause)
}

// Infrastructure Error Constructors
func NewDatabaseError(message string, cause error) *AppError {
	return Wrap(ErrorTypeDatabase, message, cause)
}

func NewCacheError(message string, cause error) *AppError {
	return Wrap(ErrorTypeCache, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func hasType(err error, errorType ErrorType) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Type == errorType
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

func IsNotFoundError(err error) bool {
	return hasType(err, ErrorTypeNotFound)
}

func IsAlreadyExistsError(err error) bool {
	return hasType(err, ErrorTypeAlreadyExists)
}

func IsTransportError(err error) bool {
	return hasType(err, ErrorTypeTransport)
}

func IsRemoteError(err error) bool {
	return hasType(err, ErrorTypeRemote)
}

func IsDecodeError(err error) bool {
	return hasType(err, ErrorTypeDecode)
}

func IsDatabaseError(err error) bool {
	return hasType(err, ErrorTypeDatabase)
}

func IsCacheError(err error) bool {
	return hasType(err, ErrorTypeCache)
}

func IsConfigurationError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}

// Message returns the user facing message of the first AppError in the chain,
// falling back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}
