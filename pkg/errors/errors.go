package errors

import (
	"fmt"
)

// ParseError represents a chord book parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures chord book or style validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidInputError reports a chord that cannot be laid out. It is raised
// before any geometry is computed.
type InvalidInputError struct {
	Field   string
	Message string
}

// NewInvalidInputError constructs an InvalidInputError.
func NewInvalidInputError(field, message string) error {
	return &InvalidInputError{Field: field, Message: message}
}

func (e *InvalidInputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid chord: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid chord: %s", e.Message)
}

// TemplateError indicates the document skeleton could not be bound to the
// computed slots, or the result is not a well-formed document.
type TemplateError struct {
	Slot string
	Err  error
}

// NewTemplateError constructs a TemplateError.
func NewTemplateError(slot string, err error) error {
	return &TemplateError{Slot: slot, Err: err}
}

func (e *TemplateError) Error() string {
	if e == nil {
		return ""
	}
	if e.Slot != "" {
		return fmt.Sprintf("template error [%s]: %v", e.Slot, e.Err)
	}
	return fmt.Sprintf("template error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *TemplateError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IOError represents a failure persisting a rendered document.
type IOError struct {
	Path string
	Op   string
	Err  error
}

// NewIOError constructs an IOError for the given operation.
func NewIOError(op, path string, err error) error {
	return &IOError{Path: path, Op: op, Err: err}
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the root error.
func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
