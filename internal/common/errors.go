// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Input errors.
	ErrEmptyInput = errors.New("empty input")
	ErrFormat     = errors.New("invalid input format")

	// Boundary errors.
	ErrInvalidArgument = errors.New("invalid argument")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// EmptyInputError is returned when a blank line is given where a record was required.
type EmptyInputError struct {
	Line string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("input line cannot be empty: %q", e.Line)
}

func (e *EmptyInputError) Unwrap() error {
	return ErrEmptyInput
}

// FormatError is returned when a line does not match the input grammar.
// Line holds the trimmed offending text.
type FormatError struct {
	Line string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid input format: '%s'", e.Line)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsInputError reports whether err was caused by malformed user input
// rather than a programming mistake.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyInput) || errors.Is(err, ErrFormat)
}
