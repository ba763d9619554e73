package apperr

import (
	"errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode
	// Message is a human-readable error message.
	Message string
	// Details contains additional context for the error.
	Details map[string]any
	// Cause is the underlying error that caused this error.
	Cause error
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// InputInvalid creates an AppError for an empty or all-empty document batch.
func InputInvalid(reason string) *AppError {
	return New(ErrCodeInputInvalid, fmt.Sprintf("invalid input batch: %s", reason))
}

// GraphInvalid creates an AppError for a cyclic graph or a dangling edge.
func GraphInvalid(reason string) *AppError {
	return New(ErrCodeGraphInvalid, fmt.Sprintf("invalid stage graph: %s", reason))
}

// StageFailure creates an AppError for a stage body that returned an error.
func StageFailure(stageID string, cause error) *AppError {
	return New(ErrCodeStageFailure, fmt.Sprintf("stage %q failed", stageID)).
		WithCause(cause).
		WithDetail("stage_id", stageID)
}

// WorkerSystemFailure creates an AppError for a worker pool lifecycle
// failure. Goroutines make this far less likely than it would be with OS
// threads, but the error code is kept as a distinct taxonomy entry.
func WorkerSystemFailure(reason string, cause error) *AppError {
	return New(ErrCodeWorkerSystemFailure, reason).WithCause(cause)
}

// ConfigDefaulted creates a non-fatal AppError describing a configuration
// value that was replaced with a documented default.
func ConfigDefaulted(field string, replacement any) *AppError {
	return New(ErrCodeConfigDefaulted, fmt.Sprintf("%s defaulted to %v", field, replacement)).
		WithDetail("field", field)
}

// IsAppError reports whether err is, or wraps, an *AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts err to an *AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Code returns the ErrorCode of err if it is an AppError, or "" otherwise.
func Code(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}
