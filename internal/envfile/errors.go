// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package envfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSeparator is returned when a line has neither '=' nor ':'.
	ErrMissingSeparator = errors.New("key/value separator (= or :) was not found")
	// ErrEmptyKey is returned when the text before the separator is blank.
	ErrEmptyKey = errors.New("key name was not specified")
	// ErrUnterminatedQuote is returned when a quoted value has no closing quote.
	ErrUnterminatedQuote = errors.New("value is missing a closing quote")
	// ErrFileNotFound is returned when an env file path is empty or does not exist.
	ErrFileNotFound = errors.New("env file not found")
	// ErrReadFile is returned when an env file cannot be read.
	ErrReadFile = errors.New("failed to read env file")
)

// ParseError describes a malformed line. Line and Column are 1-based, Column refers
// to the line after trimming and removal of any "export " prefix.
type ParseError struct {
	Err     error
	Line    int
	Column  int
	Content string
}

// NewParseError creates a new ParseError.
func NewParseError(err error, line, column int, content string) *ParseError {
	return &ParseError{
		Err:     err,
		Line:    line,
		Column:  column,
		Content: content,
	}
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s: %q", e.Line, e.Column, e.Err, e.Content)
}

// Unwrap returns the sentinel describing the failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}
