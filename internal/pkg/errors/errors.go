package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for each error type
type ErrorCode string

const (
	// General errors
	ErrCodeInternal  ErrorCode = "INTERNAL_ERROR"
	ErrCodeBadConfig ErrorCode = "BAD_CONFIG"

	// Source file errors
	ErrCodeInvalidFile       ErrorCode = "INVALID_FILE"
	ErrCodeFileTooLarge      ErrorCode = "FILE_TOO_LARGE"
	ErrCodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	ErrCodeFileParseError    ErrorCode = "FILE_PARSE_ERROR"

	// Pipeline errors
	ErrCodeSourceMissing    ErrorCode = "SOURCE_MISSING"
	ErrCodeSourceUnreadable ErrorCode = "SOURCE_UNREADABLE"
	ErrCodePlayerProcessing ErrorCode = "PLAYER_PROCESSING"
	ErrCodeArtifactWrite    ErrorCode = "ARTIFACT_WRITE"
)

// AppError represents a structured application error
type AppError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Err     error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s - %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithDetails adds additional context to the error
func (e *AppError) WithDetails(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with AppError context
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

func InternalWrap(err error, message string) *AppError {
	return Wrap(err, ErrCodeInternal, message)
}

func BadConfig(message string) *AppError {
	return New(ErrCodeBadConfig, message)
}

// Source file errors

func InvalidFile(message string) *AppError {
	return New(ErrCodeInvalidFile, message)
}

func FileTooLarge(maxSize int64) *AppError {
	return New(ErrCodeFileTooLarge,
		fmt.Sprintf("file size exceeds maximum allowed size of %d bytes", maxSize))
}

func UnsupportedFormat(format string) *AppError {
	return New(ErrCodeUnsupportedFormat,
		fmt.Sprintf("unsupported file format: %s", format))
}

func FileParseError(err error, path string) *AppError {
	return Wrap(err, ErrCodeFileParseError, fmt.Sprintf("failed to parse %s", path))
}

// Pipeline errors

func SourceMissing(path string) *AppError {
	return New(ErrCodeSourceMissing, fmt.Sprintf("source file not found: %s", path))
}

func SourceUnreadable(err error, path string) *AppError {
	return Wrap(err, ErrCodeSourceUnreadable, fmt.Sprintf("source file unreadable: %s", path))
}

func PlayerProcessing(player string, err error) *AppError {
	return Wrap(err, ErrCodePlayerProcessing,
		fmt.Sprintf("failed to process player %q", player))
}

func ArtifactWrite(err error, path string) *AppError {
	return Wrap(err, ErrCodeArtifactWrite, fmt.Sprintf("failed to write artifact %s", path))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error chain
func GetAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}

// HasCode reports whether any error in the chain carries the given code
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := GetAppError(err)
	return ok && appErr.Code == code
}
