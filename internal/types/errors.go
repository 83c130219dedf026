package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for knowledge engine errors.
type ErrorCode string

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
	CONFIG_NOT_FOUND         ErrorCode = "CONFIG_NOT_FOUND"
)

// Query pipeline error codes
const (
	QUERY_EMPTY             ErrorCode = "QUERY_EMPTY"
	QUERY_EXECUTION_FAILED  ErrorCode = "QUERY_EXECUTION_FAILED"
	QUERY_GENERATION_FAILED ErrorCode = "QUERY_GENERATION_FAILED"
	BATCH_TOO_LARGE         ErrorCode = "BATCH_TOO_LARGE"
)

// Schema error codes
const (
	SCHEMA_LOAD_FAILED ErrorCode = "SCHEMA_LOAD_FAILED"
	SCHEMA_NOT_LOADED  ErrorCode = "SCHEMA_NOT_LOADED"
)

// LLM provider error codes
const (
	LLM_PROVIDER_UNAVAILABLE ErrorCode = "LLM_PROVIDER_UNAVAILABLE"
	LLM_COMPLETION_FAILED    ErrorCode = "LLM_COMPLETION_FAILED"
)

// EngineError represents a structured error with error code, message, and
// optional cause. It supports error wrapping and retryability hints for
// error handling logic.
type EngineError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
// This enables using errors.Is() and errors.As() with wrapped errors.
func (e *EngineError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is an EngineError with the same Code.
func (e *EngineError) Is(target error) bool {
	var engineErr *EngineError
	if errors.As(target, &engineErr) {
		return e.Code == engineErr.Code
	}
	return false
}

// NewError creates a new non-retryable EngineError with the given code and message.
func NewError(code ErrorCode, message string) *EngineError {
	return &EngineError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     nil,
	}
}

// NewRetryableError creates a new retryable EngineError with the given code and message.
// Use this for transient errors that may succeed on retry (e.g., network timeouts).
func NewRetryableError(code ErrorCode, message string) *EngineError {
	return &EngineError{
		Code:      code,
		Message:   message,
		Retryable: true,
		Cause:     nil,
	}
}

// WrapError creates a new non-retryable EngineError that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *EngineError {
	return &EngineError{
		Code:      code,
		Message:   message,
		Retryable: false,
		Cause:     cause,
	}
}
