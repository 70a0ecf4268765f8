// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-vec.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrOutOfRange      = fmt.Errorf("index out of range")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrPrecondition    = fmt.Errorf("precondition violated")
	ErrInvalidConfig   = fmt.Errorf("invalid configuration")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeInvalidArgument
	ErrCodePrecondition
	ErrCodeInvalidConfig
	ErrCodeInternal
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeOK:
		return "ok"
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeInvalidArgument:
		return "invalid_argument"
	case ErrCodePrecondition:
		return "precondition"
	case ErrCodeInvalidConfig:
		return "invalid_config"
	default:
		return "internal"
	}
}

// sentinel maps a code onto the package-level error it refines.
func (c ErrorCode) sentinel() error {
	switch c {
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeInvalidArgument:
		return ErrInvalidArgument
	case ErrCodePrecondition:
		return ErrPrecondition
	case ErrCodeInvalidConfig:
		return ErrInvalidConfig
	default:
		return nil
	}
}

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap exposes the sentinel for the error's code, so errors.Is(err, ErrOutOfRange) holds
// for a structured out-of-range error.
func (e *Error) Unwrap() error {
	return e.Code.sentinel()
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// OutOfRange builds the error reported by checked element access.
func OutOfRange(index, size int) *Error {
	return NewError(ErrCodeOutOfRange, "index out of range").
		WithContext("index", index).
		WithContext("size", size)
}
