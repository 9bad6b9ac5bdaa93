package errors

import (
	"bufio"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender    Category = "render"
	CategoryAttribute Category = "attribute"
	CategoryInternal  Category = "internal"
	CategoryPage      Category = "page"
	CategoryConfig    Category = "config"
	CategoryCLI       Category = "cli"
	CategoryPublish   Category = "publish"
)

// Location represents a source location, usually inside a page file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// MarkupError is a structured error with a registered code.
type MarkupError struct {
	// Code is a unique error identifier (e.g., "E101").
	Code string

	// Category is the error type (render, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the source location where the error occurred.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *MarkupError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *MarkupError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a MarkupError carrying the same code.
func (e *MarkupError) Is(target error) bool {
	t, ok := target.(*MarkupError)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithLocation adds a source location and the lines around it.
func (e *MarkupError) WithLocation(file string, line, column int) *MarkupError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *MarkupError) WithSuggestion(s string) *MarkupError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *MarkupError) WithDetail(d string) *MarkupError {
	e.Detail = d
	return e
}

// WithDetailf is WithDetail with a format string.
func (e *MarkupError) WithDetailf(format string, args ...any) *MarkupError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *MarkupError) Wrap(err error) *MarkupError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a MarkupError from a registered error code.
func New(code string) *MarkupError {
	template, ok := registry[code]
	if !ok {
		return &MarkupError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &MarkupError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new MarkupError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *MarkupError {
	return &MarkupError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a MarkupError.
// MarkupErrors are returned unchanged.
func FromError(err error, code string) *MarkupError {
	if err == nil {
		return nil
	}
	if me, ok := err.(*MarkupError); ok {
		return me
	}
	return New(code).Wrap(err)
}
