// Package converrors provides structured error handling for tpcarrow with
// error categorization, key-value context, and stack traces captured at the
// point of creation.
//
// Every failure surfaced by the conversion pipeline is one of a small set of
// categories, which callers can test with IsType:
//
//	if converrors.IsType(err, converrors.ErrorTypePrecondition) {
//	    // output directory already exists, input directory missing, ...
//	}
//
// Errors wrap their cause and are compatible with errors.Is / errors.As.
package converrors

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrorType categorizes a conversion failure.
type ErrorType string

const (
	// ErrorTypePrecondition represents a violated run precondition, such as
	// a missing input table directory or a pre-existing output directory.
	ErrorTypePrecondition ErrorType = "precondition"
	// ErrorTypeConfig represents an unsupported configuration value, such as
	// an unknown compression codec or output format name.
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeIO represents filesystem failures: directory creation and
	// removal, file copy, rename, and deletion.
	ErrorTypeIO ErrorType = "io"
	// ErrorTypeEngine represents failures surfaced by the columnar engine
	// during read, projection, or write.
	ErrorTypeEngine ErrorType = "engine"
	// ErrorTypeInternal represents internal invariant violations.
	ErrorTypeInternal ErrorType = "internal"
)

// Error is a categorized error with context, the standard error shape for
// the whole module.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame is a single frame of the call stack recorded when the error
// was created.
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail attaches a key-value detail to the error. Chainable.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates an error of the given type, capturing the call stack.
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Newf creates an error of the given type with a formatted message.
func Newf(errType ErrorType, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Stack:   captureStack(2),
	}
}

// Wrap wraps err with a category and message, preserving err as the cause.
// If err is already a structured Error its original stack is kept. Returns
// nil when err is nil.
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existing.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType reports whether err (or any error in its chain) is a structured
// Error of the given type.
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
