package errors

import (
	"fmt"
	"strings"
)

// ParseError represents a YAML parsing failure with optional line metadata.
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

// ValidationError captures configuration validation issues.
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

// ExecutionError represents an I/O or integrity failure while patching a file.
type ExecutionError struct {
	File string
	Err  error
}

// NewExecutionError constructs an ExecutionError.
func NewExecutionError(file string, err error) error {
	return &ExecutionError{File: file, Err: err}
}

func (e *ExecutionError) Error() string {
	if e == nil {
		return ""
	}
	if e.File != "" {
		return fmt.Sprintf("execution error on %s: %v", e.File, e.Err)
	}
	return fmt.Sprintf("execution error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ExecutionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AnchorError reports patches whose anchors were not found in strict mode.
type AnchorError struct {
	File    string
	Patches []string
}

// NewAnchorError constructs an AnchorError for the unmatched patch names.
func NewAnchorError(file string, patches []string) error {
	return &AnchorError{File: file, Patches: append([]string(nil), patches...)}
}

func (e *AnchorError) Error() string {
	if e == nil {
		return ""
	}
	quoted := make([]string, len(e.Patches))
	for i, name := range e.Patches {
		quoted[i] = fmt.Sprintf("%q", name)
	}
	return fmt.Sprintf("anchor not found in %s for %d patch(es): %s", e.File, len(e.Patches), strings.Join(quoted, ", "))
}
