package errors

import (
	"errors"
	"fmt"
)

// ErrNotImage reports that an uploaded file is not an image.
var ErrNotImage = errors.New("not an image")

// ParseError represents a configuration parsing failure with optional line metadata.
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

// ValidationError captures a single field validation issue. Message is
// user facing and rendered next to the offending control.
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

// ImageError represents a failure to read or decode an uploaded image.
type ImageError struct {
	Path string
	Err  error
}

// NewImageError constructs an ImageError for the given source path.
func NewImageError(path string, err error) error {
	return &ImageError{Path: path, Err: err}
}

func (e *ImageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("image error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("image error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ImageError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SubmissionError indicates the submission collaborator rejected or failed a request.
type SubmissionError struct {
	Submitter string
	Message   string
	Err       error
}

// NewSubmissionError constructs a SubmissionError for the named submitter.
func NewSubmissionError(submitter string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &SubmissionError{Submitter: submitter, Message: message, Err: err}
}

func (e *SubmissionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Submitter != "" {
		return fmt.Sprintf("submission error [%s]: %s", e.Submitter, e.Message)
	}
	return fmt.Sprintf("submission error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *SubmissionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
