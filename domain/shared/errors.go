/*
Package shared holds the building blocks common to every subdomain: the Money
value object, the domain error model and the unit-of-work boundary.

Error model:
 1. Each subdomain defines sentinel errors for errors.Is() checks.
 2. DomainError carries the business context (entity, field, message) and the
    call stack captured at creation; formatting is deferred until a log sink
    actually asks for it.
 3. Domain errors carry no transport concepts (no HTTP status codes).
*/
package shared

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Sentinel errors for broad classification, usable with errors.Is().
var (
	// ErrNotFound signals an absent entity.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals a business-rule conflict (state, stock, uniqueness).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput signals failed validation of caller-supplied data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden signals an operation the caller may not perform.
	ErrForbidden = errors.New("forbidden")
)

// DomainError is a structured error carrying business context and the stack
// of its creation point. It supports errors.Is/As through Unwrap.
type DomainError struct {
	Err     error  // underlying sentinel
	Entity  string // entity the error relates to ("order", "product", ...)
	Field   string // optional field for validation errors
	Message string // human-readable, safe to surface to callers

	stack []uintptr
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Stack formats the captured frames on demand.
func (e *DomainError) Stack() []string {
	return FormatStack(e.stack)
}

// Stacker is implemented by errors that can report their creation stack.
// The API layer uses it to enrich error logs.
type Stacker interface {
	Stack() []string
}

// CaptureStack records the current call stack. skip counts the frames to
// drop (usually 3: Callers, CaptureStack, the error constructor).
func CaptureStack(skip int) []uintptr {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	return pcs[:n]
}

// FormatStack renders captured frames, filtering runtime internals and
// keeping at most 10 frames.
func FormatStack(stack []uintptr) []string {
	if len(stack) == 0 {
		return nil
	}

	frames := runtime.CallersFrames(stack)
	var result []string
	for {
		frame, more := frames.Next()
		if !strings.Contains(frame.File, "runtime/") {
			result = append(result, fmt.Sprintf("%s:%d %s", frame.File, frame.Line, frame.Function))
		}
		if !more || len(result) > 10 {
			break
		}
	}
	return result
}

// NewNotFoundError builds a "not found" domain error for an entity.
func NewNotFoundError(entity string) error {
	return &DomainError{
		Err:     ErrNotFound,
		Entity:  entity,
		Message: entity + " not found",
		stack:   CaptureStack(3),
	}
}

// NewConflictError builds a business-rule conflict error.
func NewConflictError(entity, message string) error {
	return &DomainError{
		Err:     ErrConflict,
		Entity:  entity,
		Message: message,
		stack:   CaptureStack(3),
	}
}

// NewValidationError builds a validation error for a field of an entity.
func NewValidationError(entity, field, reason string) error {
	return &DomainError{
		Err:     ErrInvalidInput,
		Entity:  entity,
		Field:   field,
		Message: reason,
		stack:   CaptureStack(3),
	}
}

// NewForbiddenError builds a forbidden-operation error.
func NewForbiddenError(entity, reason string) error {
	return &DomainError{
		Err:     ErrForbidden,
		Entity:  entity,
		Message: reason,
		stack:   CaptureStack(3),
	}
}
