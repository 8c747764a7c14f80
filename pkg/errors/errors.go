package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigPattern ErrorCode = "CONFIG_PATTERN"

	// Manifest errors
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"

	// FileSystem errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"
	ErrDirCreate ErrorCode = "DIR_CREATE"
	ErrScan      ErrorCode = "SCAN"

	// Remote fetch errors
	ErrFetch ErrorCode = "FETCH"
)

// HashbustError represents a structured error with code and details
type HashbustError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HashbustError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HashbustError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HashbustError) Is(target error) bool {
	var targetErr *HashbustError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HashbustError with the given code and message
func New(code ErrorCode, message string) *HashbustError {
	return &HashbustError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HashbustError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HashbustError {
	return &HashbustError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HashbustError
func Wrap(err error, code ErrorCode, message string) *HashbustError {
	if err == nil {
		return nil
	}
	return &HashbustError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HashbustError {
	if err == nil {
		return nil
	}
	return &HashbustError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HashbustError) WithDetail(key string, value interface{}) *HashbustError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var hbErr *HashbustError
	if errors.As(err, &hbErr) {
		return hbErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HashbustError
func GetErrorCode(err error) ErrorCode {
	var hbErr *HashbustError
	if errors.As(err, &hbErr) {
		return hbErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HashbustError
func GetErrorDetails(err error) map[string]interface{} {
	var hbErr *HashbustError
	if errors.As(err, &hbErr) {
		return hbErr.Details
	}
	return nil
}
