package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrMissingConfiguration = errors.New("missing configuration")
	ErrBoundaryNotFound     = errors.New("session boundary not found")
)

// ParseError is returned when log text does not match an expected grammar.
// Line holds the offending fragment so an operator can locate it.
type ParseError struct {
	Line string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseErrorf(line, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Err: fmt.Errorf(format, args...)}
}
