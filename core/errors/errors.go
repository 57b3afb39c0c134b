// Package errors provides coded errors for the communicator runtime.
//
// Overview:
//   - Responsibility: Classify runtime failures (destroyed handle, setup failure, parse errors)
//   - Key Types: Code for classification, E for structured errors
//   - Concurrency Model: All functions are safe for concurrent use
//   - Error Semantics: Compatible with errors.Is/As; E matches any E with the same code
//
// Usage:
//
//	err := errors.New(errors.CodeDestroyed, "communicator destroyed")
//	if errors.Is(err, errors.ErrDestroyed) { ... }
//	wrapped := errors.Wrap(errors.CodeSetupFailed, "communicator.Initialize", cause)
package errors

import (
	"errors"
	"fmt"
)

// Code represents an error classification code.
type Code string

// Runtime error codes.
const (
	// CodeDestroyed is returned by every liveness-gated operation once the
	// communicator has been destroyed.
	CodeDestroyed Code = "COMMUNICATOR_DESTROYED"
	// CodeSetupFailed is returned when the second setup phase failed. The
	// communicator has been rolled back before the error surfaces.
	CodeSetupFailed Code = "SETUP_FAILED"
	// CodeInitialization covers failures building the runtime instance.
	CodeInitialization    Code = "INITIALIZATION"
	CodeAlreadyRegistered Code = "ALREADY_REGISTERED"
	CodeNotRegistered     Code = "NOT_REGISTERED"
	CodeProxyParse        Code = "PROXY_PARSE"
	CodeEndpointParse     Code = "ENDPOINT_PARSE"
	CodeDeactivated       Code = "OBJECT_ADAPTER_DEACTIVATED"

	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeInternal        Code = "INTERNAL"
	CodeUnavailable     Code = "UNAVAILABLE"
)

// ErrDestroyed matches any error carrying CodeDestroyed.
var ErrDestroyed = New(CodeDestroyed, "communicator destroyed")

// E represents a structured error with code, operation, message, and details.
type E struct {
	Code    Code   // Error classification code
	Op      string // Operation that failed
	Err     error  // Underlying error (may be nil)
	Msg     string // Human-readable message
	Details []any  // Additional structured details
}

// Error implements the error interface.
func (e *E) Error() string {
	prefix := string(e.Code)
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %s: %v", prefix, e.Msg, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	default:
		return fmt.Sprintf("%s: %s", prefix, e.Msg)
	}
}

// Unwrap returns the underlying error.
func (e *E) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *E with the same code.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new structured error with the given code and message.
func New(code Code, msg string) error {
	return &E{
		Code: code,
		Msg:  msg,
	}
}

// Newf creates a new structured error with a formatted message.
func Newf(code Code, format string, args ...any) error {
	return &E{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new structured error wrapping err.
func Wrap(code Code, op string, err error) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
	}
}

// Wrapf creates a new structured error wrapping err with a formatted message.
func Wrapf(code Code, op string, err error, format string, args ...any) error {
	return &E{
		Code: code,
		Op:   op,
		Err:  err,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// CodeOf extracts the outermost error code from err.
// Returns empty string if err carries no code.
func CodeOf(err error) Code {
	var e *E
	if err != nil && errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether any error in err's chain carries code.
func IsCode(err error, code Code) bool {
	return errors.Is(err, &E{Code: code})
}

// Is is errors.Is.
func Is(err error, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Builder provides a fluent interface for constructing errors.
type Builder struct {
	code    Code
	op      string
	err     error
	msg     string
	details []any
}

// Build starts a Builder for code.
func Build(code Code) *Builder {
	return &Builder{code: code}
}

// WithOp sets the operation that failed.
func (b *Builder) WithOp(op string) *Builder {
	b.op = op
	return b
}

// WithErr wraps an underlying error.
func (b *Builder) WithErr(err error) *Builder {
	b.err = err
	return b
}

// WithMsgf sets a formatted human-readable message.
func (b *Builder) WithMsgf(format string, args ...any) *Builder {
	b.msg = fmt.Sprintf(format, args...)
	return b
}

// WithDetails adds structured details to the error.
func (b *Builder) WithDetails(details ...any) *Builder {
	b.details = append(b.details, details...)
	return b
}

// Err builds and returns the error.
func (b *Builder) Err() error {
	return &E{
		Code:    b.code,
		Op:      b.op,
		Err:     b.err,
		Msg:     b.msg,
		Details: b.details,
	}
}
