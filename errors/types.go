package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error condition
type ErrorCode string

const (
	// Store errors
	ErrCodeInvalidArgument   ErrorCode = "INVALID_ARGUMENT"
	ErrCodeInvalidAction     ErrorCode = "INVALID_ACTION"
	ErrCodeIllegalReentrancy ErrorCode = "ILLEGAL_REENTRANCY"

	// Reducer combination errors
	ErrCodeReducerShape      ErrorCode = "REDUCER_SHAPE"
	ErrCodeUndefinedSubstate ErrorCode = "UNDEFINED_SUBSTATE"

	// Middleware errors
	ErrCodePrematureDispatch ErrorCode = "PREMATURE_DISPATCH"

	// Configuration errors
	ErrCodeConfigNotFound ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"

	// General errors
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// FluxError represents a structured error with context
type FluxError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *FluxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FluxError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *FluxError) WithDetail(key string, value interface{}) *FluxError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *FluxError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new FluxError
func New(code ErrorCode, message string) *FluxError {
	return &FluxError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a FluxError
func Wrap(err error, code ErrorCode, message string) *FluxError {
	return &FluxError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific FluxError code
func Is(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	fluxErr, ok := err.(*FluxError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return Is(unwrapper.Unwrap(), code)
		}
		return false
	}

	return fluxErr.Code == code
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	fluxErr, ok := err.(*FluxError)
	if !ok {
		// Try to unwrap
		if unwrapper, ok := err.(interface{ Unwrap() error }); ok {
			return GetCode(unwrapper.Unwrap())
		}
		return ""
	}

	return fluxErr.Code
}
