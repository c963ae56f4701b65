/*
Package pastdate converts English date expressions into calendar dates.

Consists of subpackages:
  - cmd/pastdate: console utility printing conversions of date expressions;
  - calendar: date construction, validation, and arithmetic used by the grammar;
  - grammar: the date grammar and its entry point Parse;
  - parser: generic backtracking parser combinators;
  - source: defines immutable source text and positions in it.

Accepted expressions are absolute ("Aug 20, 2013"), partial ("August 2011", "Aug 19"),
keywords ("today", "now", "yesterday"), and relative ("3 days ago",
"1 month from 2 days before Aug 30"). The result is always midnight of some day
and relative expressions always move into the past: "from", "before", "until",
and "ago" all subtract.

Typical usage is:

	date, e := grammar.Parse(ctx, "the day before yesterday", time.Now())
	if e != nil {
		// e is *pastdate.Error with code pastdate.NoMatchError
	}
*/
package pastdate

import (
	"errors"
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	SyntaxErrors = 101 // used by parser and grammar
	ConfigErrors = 201 // used by cmd/pastdate configuration
)

// Error codes shared by subpackages:
const (
	// NoMatchError indicates that no grammar alternative matches the whole input.
	NoMatchError = SyntaxErrors + iota

	// RecursionError indicates that recursion depth limit was reached while parsing.
	// It is reported only when it was the farthest failure.
	RecursionError
)

// ErrNoMatch is matched by errors.Is for every Error with NoMatchError or RecursionError code.
var ErrNoMatch = errors.New("could not parse")

// Error is the error type used by pastdate subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number in source text or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos implements this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is ErrNoMatch and e has NoMatchError or RecursionError code.
func (e *Error) Is(target error) bool {
	return target == ErrNoMatch && (e.Code == NoMatchError || e.Code == RecursionError)
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
