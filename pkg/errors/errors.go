package errors

import (
	"fmt"
)

// ParseError represents a component document that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Column  int
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

// NewParseErrorAt constructs a ParseError pointing at a line and column.
func NewParseErrorAt(path string, line, column int, message string) error {
	return &ParseError{Path: path, Line: line, Column: column, Message: message}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("parse error: %s:%d:%d: %s", e.Path, e.Line, e.Column, e.Message)
	case e.Line > 0:
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

// ValidationError captures document or settings validation issues.
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

// ComponentError reports a component that could not be built or registered.
type ComponentError struct {
	Component string
	Err       error
}

// NewComponentError constructs a ComponentError for the named component.
func NewComponentError(component string, err error) error {
	return &ComponentError{Component: component, Err: err}
}

func (e *ComponentError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("component %s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("component: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ComponentError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
