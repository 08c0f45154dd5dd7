// Package errors provides the error taxonomy for the livingdoc toolkit.
// Every failure in the normalization pipeline maps to one of five kinds,
// each with a fixed exit code the CLI exposes to its invoker. Lower codes
// are never silently downgraded: once a stage fails, the original message
// travels as the wrapped cause when re-reported under another kind.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// As is an alias for the standard library errors.As.
var As = errors.As

// Is is an alias for the standard library errors.Is.
var Is = errors.Is

// Sentinel errors for programmatic checking with errors.Is.
var (
	// ErrInvalidInput indicates the input file is missing, unreadable,
	// or not well-formed JSON.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAdapter indicates that no adapter recognizes the input or the
	// recognized adapter cannot extract required identity fields.
	ErrAdapter = errors.New("adapter error")

	// ErrSchemaValidation indicates a constructed record violates the
	// closed schema or a field constraint.
	ErrSchemaValidation = errors.New("schema validation failed")

	// ErrNormalization indicates a failure during section normalization
	// or document assembly.
	ErrNormalization = errors.New("normalization failed")

	// ErrOutputIO indicates the validated document could not be written.
	ErrOutputIO = errors.New("output I/O error")
)

// Exit codes per error kind, in severity order.
const (
	ExitCodeInvalidInput     = 1
	ExitCodeAdapter          = 2
	ExitCodeSchemaValidation = 3
	ExitCodeNormalization    = 4
	ExitCodeOutputIO         = 5
)

// coder is implemented by every toolkit error type.
type coder interface {
	ExitCode() int
}

// ExitCode returns the exit code for an error. Errors that do not carry a
// toolkit kind map to 1.
func ExitCode(err error) int {
	var c coder
	if errors.As(err, &c) {
		return c.ExitCode()
	}
	return ExitCodeInvalidInput
}

// InvalidInputError represents a missing, unreadable, or malformed input.
type InvalidInputError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid input %q: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *InvalidInputError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// ExitCode returns the exit code for invalid input errors.
func (e *InvalidInputError) ExitCode() int { return ExitCodeInvalidInput }

// NewInvalidInputError creates a new InvalidInputError.
func NewInvalidInputError(path, message string, err error) *InvalidInputError {
	return &InvalidInputError{Path: path, Message: message, Err: err}
}

// AdapterError represents an adapter detection or extraction failure.
type AdapterError struct {
	Adapter string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AdapterError) Error() string {
	if e.Adapter != "" {
		return fmt.Sprintf("adapter %s: %s", e.Adapter, e.Message)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap.
func (e *AdapterError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *AdapterError) Is(target error) bool { return target == ErrAdapter }

// ExitCode returns the exit code for adapter errors.
func (e *AdapterError) ExitCode() int { return ExitCodeAdapter }

// NewAdapterError creates a new AdapterError.
func NewAdapterError(adapter, message string, err error) *AdapterError {
	return &AdapterError{Adapter: adapter, Message: message, Err: err}
}

// SchemaValidationError represents a closed-schema or field constraint
// violation on a constructed record.
type SchemaValidationError struct {
	Schema  string
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SchemaValidationError) Error() string {
	switch {
	case e.Schema != "" && e.Field != "":
		return fmt.Sprintf("schema %s: field %s: %s", e.Schema, e.Field, e.Message)
	case e.Field != "":
		return fmt.Sprintf("field %s: %s", e.Field, e.Message)
	case e.Schema != "":
		return fmt.Sprintf("schema %s: %s", e.Schema, e.Message)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap.
func (e *SchemaValidationError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *SchemaValidationError) Is(target error) bool { return target == ErrSchemaValidation }

// ExitCode returns the exit code for schema validation errors.
func (e *SchemaValidationError) ExitCode() int { return ExitCodeSchemaValidation }

// NewSchemaValidationError creates a new SchemaValidationError.
func NewSchemaValidationError(schema, field, message string) *SchemaValidationError {
	return &SchemaValidationError{Schema: schema, Field: field, Message: message}
}

// NormalizationError represents a failure during section normalization or
// document assembly, including any unexpected internal failure.
type NormalizationError struct {
	Stage   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NormalizationError) Error() string {
	if e.Stage != "" {
		return fmt.Sprintf("normalization stage %s: %s", e.Stage, e.Message)
	}
	return e.Message
}

// Unwrap implements errors.Unwrap.
func (e *NormalizationError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *NormalizationError) Is(target error) bool { return target == ErrNormalization }

// ExitCode returns the exit code for normalization errors.
func (e *NormalizationError) ExitCode() int { return ExitCodeNormalization }

// NewNormalizationError creates a new NormalizationError.
func NewNormalizationError(stage, message string, err error) *NormalizationError {
	return &NormalizationError{Stage: stage, Message: message, Err: err}
}

// OutputIOError represents a failure writing the validated document.
type OutputIOError struct {
	Operation string // "write", "create", "mkdir"
	Path      string
	Err       error
}

// Error implements the error interface.
func (e *OutputIOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("output I/O error during %s of %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("output I/O error during %s: %v", e.Operation, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *OutputIOError) Unwrap() error { return e.Err }

// Is implements errors.Is support.
func (e *OutputIOError) Is(target error) bool { return target == ErrOutputIO }

// ExitCode returns the exit code for output I/O errors.
func (e *OutputIOError) ExitCode() int { return ExitCodeOutputIO }

// NewOutputIOError creates a new OutputIOError.
func NewOutputIOError(operation, path string, err error) *OutputIOError {
	return &OutputIOError{Operation: operation, Path: path, Err: err}
}

// Helper wrapping functions for common patterns.

// WrapAdapter wraps an error as an AdapterError, preserving the cause.
func WrapAdapter(adapter string, err error) error {
	if err == nil {
		return nil
	}
	return &AdapterError{Adapter: adapter, Message: err.Error(), Err: err}
}

// WrapNormalization wraps an error as a NormalizationError unless it
// already carries a lower-numbered kind.
func WrapNormalization(stage string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrAdapter) ||
		errors.Is(err, ErrSchemaValidation) {
		return err
	}
	return &NormalizationError{Stage: stage, Message: err.Error(), Err: err}
}

// WrapOutputIO wraps an error as an OutputIOError.
func WrapOutputIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewOutputIOError(operation, path, err)
}
