// SPDX-License-Identifier: MIT
// Package parser: sentinel error set, one per error Status.
// ParseError wraps a sentinel together with the offset it was detected at;
// callers match the kind with errors.Is and read the offset with errors.As.

package parser

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalEquation           = errors.New("parser: illegal equation")
	ErrLastEquationNotTerminated = errors.New("parser: last equation not terminated")
	ErrNoEqualSign               = errors.New("parser: no equal sign")
	ErrMultipleEqualSigns        = errors.New("parser: multiple equal signs")
	ErrNoTermBeforeEqualSign     = errors.New("parser: no term before equal sign")
	ErrNoTermAfterEqualSign      = errors.New("parser: no term after equal sign")
	ErrNoTermEncountered         = errors.New("parser: no term encountered")
	ErrNoVariableInEquation      = errors.New("parser: no variable in equation")
	ErrMultipleDecimalPoints     = errors.New("parser: multiple decimal points")
	ErrTooManyDigits             = errors.New("parser: too many digits")
	ErrMissingExponent           = errors.New("parser: missing exponent")
	ErrIllegalExponent           = errors.New("parser: illegal exponent")
)

// ParseError is an error Status plus the 0-based offset into the line that
// triggered it.
type ParseError struct {
	Status   Status
	Position int
}

// newParseError is the single constructor used by scanners and the assembler.
func newParseError(s Status, pos int) *ParseError {
	return &ParseError{Status: s, Position: pos}
}

// Error returns "<sentinel text> at offset N".
func (e *ParseError) Error() string {
	if err := e.Status.Err(); err != nil {
		return fmt.Sprintf("%v at offset %d", err, e.Position)
	}
	return fmt.Sprintf("parser: %s at offset %d", e.Status, e.Position)
}

// Unwrap returns the sentinel for errors.Is.
func (e *ParseError) Unwrap() error { return e.Status.Err() }
