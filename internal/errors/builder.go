package errors

// ErrorBuilder provides a fluent API for creating ClassifiedError instances.
type ErrorBuilder struct {
	category ErrorCategory
	message  string
	cause    error
	context  ErrorContext
}

// NewError creates a new ErrorBuilder with the specified category and message.
func NewError(category ErrorCategory, message string) *ErrorBuilder {
	return &ErrorBuilder{
		category: category,
		message:  message,
		context:  make(ErrorContext),
	}
}

// WrapError creates a new ErrorBuilder that wraps an existing error.
func WrapError(err error, category ErrorCategory, message string) *ErrorBuilder {
	b := NewError(category, message)
	b.cause = err
	return b
}

// WithContext adds a context key-value pair.
func (b *ErrorBuilder) WithContext(key string, value any) *ErrorBuilder {
	b.context = b.context.Set(key, value)
	return b
}

// WithContextMap adds multiple context values.
func (b *ErrorBuilder) WithContextMap(ctx ErrorContext) *ErrorBuilder {
	b.context = b.context.Merge(ctx)
	return b
}

// Build creates the final ClassifiedError.
func (b *ErrorBuilder) Build() *ClassifiedError {
	return &ClassifiedError{
		category: b.category,
		message:  b.message,
		cause:    b.cause,
		context:  b.context,
	}
}

// NotFound creates an error for a missing required input.
func NotFound(message string) *ErrorBuilder {
	return NewError(CategoryNotFound, message)
}

// Malformed creates an error for input that is not shaped as expected.
func Malformed(message string) *ErrorBuilder {
	return NewError(CategoryMalformed, message)
}

// RenderFailure wraps a template engine error.
func RenderFailure(err error, message string) *ErrorBuilder {
	return WrapError(err, CategoryRender, message)
}

// IOFailure wraps a filesystem write or copy error.
func IOFailure(err error, message string) *ErrorBuilder {
	return WrapError(err, CategoryIO, message)
}

// InvalidArgument creates an error for values outside a function's domain.
func InvalidArgument(message string) *ErrorBuilder {
	return NewError(CategoryInvalidArgument, message)
}

// ConfigError creates a configuration error.
func ConfigError(message string) *ErrorBuilder {
	return NewError(CategoryConfig, message)
}
