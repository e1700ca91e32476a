package errors

import (
	"fmt"
)

// ParseError represents a YAML config parsing failure with optional line metadata.
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

// ProbeError records a provider whose information source failed, timed out
// or panicked. It is a diagnostic only and never reaches the prompt output.
type ProbeError struct {
	Provider string
	Err      error
}

// NewProbeError constructs a ProbeError for the named provider.
func NewProbeError(provider string, err error) error {
	return &ProbeError{Provider: provider, Err: err}
}

func (e *ProbeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Provider != "" {
		return fmt.Sprintf("probe error [%s]: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("probe error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ProbeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DirectoryError indicates that neither the working directory nor any of its
// ancestors exist. It is the only condition that aborts a prompt render.
type DirectoryError struct {
	Path string
	Err  error
}

// NewDirectoryError constructs a DirectoryError for the given path.
func NewDirectoryError(path string, err error) error {
	return &DirectoryError{Path: path, Err: err}
}

func (e *DirectoryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path == "" {
		return "your current directory is invalid"
	}
	if e.Err != nil {
		return fmt.Sprintf("your current directory is invalid: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("your current directory is invalid: %s", e.Path)
}

// Unwrap exposes the underlying error.
func (e *DirectoryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
