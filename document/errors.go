// SPDX-License-Identifier: MIT

package document

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lineq/parser"
	"github.com/katalvlaran/lineq/structure"
)

var (
	// ErrLineTooLong is returned for a line longer than the configured limit.
	ErrLineTooLong = errors.New("document: line too long")

	// ErrNoEquations is returned by Validate for a document without equations.
	ErrNoEquations = errors.New("document: no equations")

	// ErrTooFewEquations: more variables than equations.
	ErrTooFewEquations = errors.New("document: fewer equations than variables")

	// ErrTooManyEquations: more equations than variables.
	ErrTooManyEquations = errors.New("document: more equations than variables")
)

// LineError locates a failure in the input. Line is 1-based, Column is the
// 0-based offset inside the comment-stripped line.
type LineError struct {
	Line   int
	Column int
	Status parser.Status
	Err    error
}

// Error returns "line L, column C: <cause>".
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap exposes the cause (a parser sentinel or ErrLineTooLong).
func (e *LineError) Unwrap() error { return e.Err }

// Message returns the human-readable status text.
func (e *LineError) Message() string {
	if errors.Is(e.Err, ErrLineTooLong) {
		return "Line too long"
	}
	return e.Status.Message()
}

// CountError reports an equation/variable count mismatch.
type CountError struct {
	Variables int
	Equations int
	// Blocks lists the non-square blocks responsible for the mismatch.
	Blocks []structure.Block
}

// Error returns the count sentence, e.g.
// "There are 3 variables and only 2 equations."
func (e *CountError) Error() string {
	if e.Variables > e.Equations {
		return fmt.Sprintf("There are %d variables and only %d equations.", e.Variables, e.Equations)
	}
	return fmt.Sprintf("There are %d equations and only %d variables.", e.Equations, e.Variables)
}

// Unwrap returns ErrTooFewEquations or ErrTooManyEquations.
func (e *CountError) Unwrap() error {
	if e.Variables > e.Equations {
		return ErrTooFewEquations
	}
	return ErrTooManyEquations
}
