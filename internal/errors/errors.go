package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code string) bool {
	return GetCode(err) == code
}

// Error codes for the ingestion and memory pipeline.
//
// The first three abort generation and surface to the caller; memory
// unavailability is recovered locally and never blocks a generation.
const (
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeEmptyDataset      = "EMPTY_DATASET"
	CodeParseError        = "PARSE_ERROR"
	CodeMemoryUnavailable = "MEMORY_UNAVAILABLE"
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeInternalError     = "INTERNAL_ERROR"
)

// UnsupportedFormat reports an unrecognized file extension.
func UnsupportedFormat(extension string) *AppError {
	return New(CodeUnsupportedFormat, fmt.Sprintf("unsupported file type: %s", extension))
}

// EmptyDataset reports a file that parsed to zero usable rows.
func EmptyDataset(extension string) *AppError {
	return New(CodeEmptyDataset, fmt.Sprintf("%s file contains no data rows", extension))
}

// ParseFailure reports malformed file content.
func ParseFailure(extension string, cause error) *AppError {
	return &AppError{
		Code:    CodeParseError,
		Message: fmt.Sprintf("failed to parse %s content", extension),
		Cause:   cause,
	}
}

// MemoryUnavailable reports a pattern-store read or write failure.
func MemoryUnavailable(op string, cause error) *AppError {
	return &AppError{
		Code:    CodeMemoryUnavailable,
		Message: fmt.Sprintf("pattern store %s failed", op),
		Cause:   cause,
	}
}

// ConfigInvalid reports a configuration problem.
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

// InvalidInput reports a caller-supplied value that cannot be used.
func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// IsUnsupportedFormat reports whether err is an unsupported-extension failure.
func IsUnsupportedFormat(err error) bool { return HasCode(err, CodeUnsupportedFormat) }

// IsEmptyDataset reports whether err is a zero-row failure.
func IsEmptyDataset(err error) bool { return HasCode(err, CodeEmptyDataset) }

// IsParseError reports whether err is a malformed-content failure.
func IsParseError(err error) bool { return HasCode(err, CodeParseError) }

// IsMemoryUnavailable reports whether err is a pattern-store failure.
func IsMemoryUnavailable(err error) bool { return HasCode(err, CodeMemoryUnavailable) }
