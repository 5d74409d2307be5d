// Package errors provides classified errors for the build pipeline.
//
// Every failure that can abort a build carries a Category so the CLI can pick
// an exit code and log it with structured context. Errors are never retried.
package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// ErrorCategory represents the broad category of an error.
type ErrorCategory string

const (
	// CategoryNotFound is a required input file or directory that is absent.
	CategoryNotFound ErrorCategory = "not_found"
	// CategoryMalformed is input that exists but is not shaped as expected.
	CategoryMalformed ErrorCategory = "malformed"
	// CategoryRender is a template engine failure for a given page.
	CategoryRender ErrorCategory = "render"
	// CategoryIO is a write or copy failure.
	CategoryIO ErrorCategory = "io"
	// CategoryInvalidArgument is a caller passing values outside a function's domain.
	CategoryInvalidArgument ErrorCategory = "invalid_argument"
	// CategoryConfig is an invalid configuration value.
	CategoryConfig ErrorCategory = "config"
	// CategoryInternal is used for errors that were never classified.
	CategoryInternal ErrorCategory = "internal"
)

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	s, ok := c[key].(string)
	return s, ok
}

// Merge combines two contexts, with other taking precedence.
func (c ErrorContext) Merge(other ErrorContext) ErrorContext {
	result := make(ErrorContext, len(c)+len(other))
	maps.Copy(result, c)
	maps.Copy(result, other)
	return result
}

// ClassifiedError is an error with a category and structured context.
type ClassifiedError struct {
	category ErrorCategory
	message  string
	cause    error
	context  ErrorContext
}

// Error implements the error interface.
func (e *ClassifiedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.category, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.category, e.message)
}

// Unwrap returns the underlying cause.
func (e *ClassifiedError) Unwrap() error { return e.cause }

// Category returns the error category.
func (e *ClassifiedError) Category() ErrorCategory { return e.category }

// Message returns the error message without the cause.
func (e *ClassifiedError) Message() string { return e.message }

// Context returns the error context.
func (e *ClassifiedError) Context() ErrorContext { return e.context }

// WithContext returns a copy of the error with an added context value.
func (e *ClassifiedError) WithContext(key string, value any) *ClassifiedError {
	return &ClassifiedError{
		category: e.category,
		message:  e.message,
		cause:    e.cause,
		context:  e.context.Merge(ErrorContext{key: value}),
	}
}

// Annotate adds a context value to err if it is classified and returns err
// unchanged otherwise.
func Annotate(err error, key string, value any) error {
	if classified, ok := err.(*ClassifiedError); ok {
		return classified.WithContext(key, value)
	}
	return err
}

// Is reports whether target is a ClassifiedError with the same category and message.
func (e *ClassifiedError) Is(target error) bool {
	if other, ok := target.(*ClassifiedError); ok {
		return e.category == other.category && e.message == other.message
	}
	return false
}

// AsClassified finds the first ClassifiedError in err's chain.
func AsClassified(err error) (*ClassifiedError, bool) {
	var classified *ClassifiedError
	if stderrors.As(err, &classified) {
		return classified, true
	}
	return nil, false
}

// HasCategory checks if any error in the chain belongs to a category.
func HasCategory(err error, category ErrorCategory) bool {
	if classified, ok := AsClassified(err); ok {
		return classified.category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal.
func GetCategory(err error) ErrorCategory {
	if classified, ok := AsClassified(err); ok {
		return classified.category
	}
	return CategoryInternal
}

// ExitCode maps an error to a process exit code. Nil maps to 0; everything
// else is non-zero.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetCategory(err) {
	case CategoryInvalidArgument:
		return 2
	case CategoryNotFound:
		return 3
	case CategoryMalformed:
		return 4
	case CategoryConfig:
		return 7
	case CategoryRender:
		return 9
	case CategoryIO:
		return 11
	default:
		return 1
	}
}
