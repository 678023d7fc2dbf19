package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Listing errors, all fatal before any mutation
	ErrFormat           ErrorCode = "FORMAT"
	ErrRange            ErrorCode = "RANGE"
	ErrSourceUnreadable ErrorCode = "SOURCE_UNREADABLE"
	ErrEditor           ErrorCode = "EDITOR"
	ErrNoRepository     ErrorCode = "NO_REPOSITORY"

	// Per-entry apply errors
	ErrPermission             ErrorCode = "PERMISSION"
	ErrNotEmpty               ErrorCode = "NOT_EMPTY"
	ErrBackend                ErrorCode = "BACKEND"
	ErrConcurrentModification ErrorCode = "CONCURRENT_MODIFICATION"
	ErrStaging                ErrorCode = "STAGING"
)

// fatalCodes abort a run before the apply phase starts.
var fatalCodes = map[ErrorCode]bool{
	ErrInvalidInput:     true,
	ErrConfigLoad:       true,
	ErrConfigInvalid:    true,
	ErrFormat:           true,
	ErrRange:            true,
	ErrSourceUnreadable: true,
	ErrEditor:           true,
	ErrNoRepository:     true,
}

// EdirError represents a structured error with code and details
type EdirError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EdirError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EdirError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EdirError) Is(target error) bool {
	var targetErr *EdirError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EdirError with the given code and message
func New(code ErrorCode, message string) *EdirError {
	return &EdirError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EdirError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EdirError {
	return &EdirError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EdirError
func Wrap(err error, code ErrorCode, message string) *EdirError {
	if err == nil {
		return nil
	}
	return &EdirError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EdirError {
	if err == nil {
		return nil
	}
	return &EdirError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EdirError) WithDetail(key string, value interface{}) *EdirError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var edirErr *EdirError
	if errors.As(err, &edirErr) {
		return edirErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EdirError
func GetErrorCode(err error) ErrorCode {
	var edirErr *EdirError
	if errors.As(err, &edirErr) {
		return edirErr.Code
	}
	return ErrUnknown
}

// IsFatal reports whether err must end the run before anything is mutated.
func IsFatal(err error) bool {
	return fatalCodes[GetErrorCode(err)]
}

// Classify wraps a raw filesystem error from a backend operation with the
// matching per-entry code. Errors that already carry a code pass through.
func Classify(err error, message string) error {
	if err == nil {
		return nil
	}
	var edirErr *EdirError
	if errors.As(err, &edirErr) {
		return err
	}
	switch {
	case errors.Is(err, fs.ErrPermission):
		return Wrap(err, ErrPermission, message)
	case errors.Is(err, fs.ErrNotExist):
		return Wrap(err, ErrConcurrentModification, message)
	case errors.Is(err, syscall.ENOTEMPTY), errors.Is(err, syscall.EEXIST):
		return Wrap(err, ErrNotEmpty, message)
	default:
		return Wrap(err, ErrBackend, message)
	}
}

// Detail returns the text shown to the user for a failed action. Path
// prefixes added by the os package are dropped since they may name a
// staging path the user never typed.
func Detail(err error) string {
	if err == nil {
		return ""
	}
	var edirErr *EdirError
	if errors.As(err, &edirErr) {
		if edirErr.Wrapped != nil {
			return Detail(edirErr.Wrapped)
		}
		return edirErr.Message
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Err.Error()
	}
	return err.Error()
}

// UserMessage returns the text printed for an error that ends the run
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var edirErr *EdirError
	if errors.As(err, &edirErr) {
		if edirErr.Wrapped != nil {
			return edirErr.Message + ": " + Detail(edirErr.Wrapped)
		}
		return edirErr.Message
	}
	return err.Error()
}
