package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryDefinition Category = "definition"
	CategoryTarget     Category = "target"
	CategoryRuntime    Category = "runtime"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// TooltipError is a structured error with a code, an explanation and a hint.
type TooltipError struct {
	// Code is a unique error identifier (e.g., "T001").
	Code string

	// Category is the error type (definition, target, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Subject names the thing the error is about, usually a tooltip id
	// or a file path.
	Subject string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TooltipError) Error() string {
	msg := e.Message
	if e.Subject != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Subject)
	}
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, msg)
	}
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Wrapped)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TooltipError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a TooltipError carrying the same code.
// This lets packages export code-only sentinels for errors.Is checks.
func (e *TooltipError) Is(target error) bool {
	t, ok := target.(*TooltipError)
	if !ok || e.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithSubject records what the error is about.
func (e *TooltipError) WithSubject(s string) *TooltipError {
	e.Subject = s
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *TooltipError) WithSuggestion(s string) *TooltipError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *TooltipError) WithDetail(d string) *TooltipError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *TooltipError) Wrap(err error) *TooltipError {
	e.Wrapped = err
	return e
}

// New creates a TooltipError from a registered error code.
func New(code string) *TooltipError {
	template, ok := registry[code]
	if !ok {
		return &TooltipError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TooltipError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new TooltipError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *TooltipError {
	return &TooltipError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a TooltipError.
func FromError(err error, code string) *TooltipError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*TooltipError); ok {
		return te
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first TooltipError in err's chain.
func CodeOf(err error) string {
	for err != nil {
		if te, ok := err.(*TooltipError); ok {
			return te.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
