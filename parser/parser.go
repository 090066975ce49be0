// SPDX-License-Identifier: MIT

package parser

import (
	"github.com/katalvlaran/lineq/registry"
	"github.com/katalvlaran/lineq/sparse"
)

// phase is what the assembler expects next on the current line.
type phase uint8

const (
	awaitingTerm phase = iota
	awaitingOperator
)

// term is one scanned [sign][number][variable] unit.
type term struct {
	negative    bool
	coefficient float64
	variable    string // empty for a constant
}

// Parser is the incremental equation assembler. The zero value is not
// usable; construct with New.
type Parser struct {
	maxDigits int

	equationIndex int // row of the equation being assembled
	phase         phase

	pendingOperator bool // a binary '+'/'-' was consumed; a term must follow
	pendingNegative bool // the pending operator was '-'

	equalSignSeen   bool
	atLeastOneVar   bool
	termBeforeEqual bool
	termAfterEqual  bool

	lastStatus    Status
	errorPosition int
}

// New returns a Parser in its initial state.
func New(opts ...Option) *Parser {
	o := gatherOptions(opts...)
	p := &Parser{maxDigits: o.maxDigits}
	p.Reset()

	return p
}

// Reset returns the parser to its initial state: row 0, no equation in
// progress, last status StatusSuccess. Options are kept.
func (p *Parser) Reset() {
	p.equationIndex = 0
	p.resetEquation()
	p.lastStatus = StatusSuccess
	p.errorPosition = -1
}

// resetEquation clears the per-equation state after a close.
func (p *Parser) resetEquation() {
	p.phase = awaitingTerm
	p.pendingOperator, p.pendingNegative = false, false
	p.equalSignSeen, p.atLeastOneVar = false, false
	p.termBeforeEqual, p.termAfterEqual = false, false
}

// GetLastStatusValue returns the status of the most recent Parse call.
func (p *Parser) GetLastStatusValue() Status { return p.lastStatus }

// GetErrorPosition returns the 0-based offset of the last error, or -1 when
// the last status is not an error.
func (p *Parser) GetErrorPosition() int {
	if !p.lastStatus.IsError() {
		return -1
	}
	return p.errorPosition
}

// Err returns the last error as a *ParseError, or nil.
func (p *Parser) Err() error {
	if !p.lastStatus.IsError() {
		return nil
	}
	return newParseError(p.lastStatus, p.errorPosition)
}

// Equations returns the number of equations closed successfully so far.
func (p *Parser) Equations() int { return p.equationIndex }

// InProgress reports whether an equation has been started but not closed.
func (p *Parser) InProgress() bool {
	return p.equalSignSeen || p.termBeforeEqual || p.termAfterEqual || p.pendingOperator
}

// Parse consumes one line of input. Terms are folded into a and b, new
// variable names are registered in vars, and *equations (when non-nil) is
// set to the number of equations closed so far. An empty or blank line
// closes a pending equation; after the last real line the caller must pass
// one empty line to flush.
//
// On an error status the line offset is available from GetErrorPosition;
// the parser must be Reset before it is reused.
func (p *Parser) Parse(line string, a *sparse.Matrix, b *sparse.Vector, vars *registry.Registry, equations *int) Status {
	pos := 0
	SkipSpaces(line, &pos)
	if pos >= len(line) {
		return p.endOfEquation(pos, equations)
	}

	for {
		SkipSpaces(line, &pos)
		if pos >= len(line) {
			return p.succeed(StatusSuccess)
		}

		switch p.phase {
		case awaitingTerm:
			// At the start of a side '=' and ';' belong to the operator
			// phase, so that validation names the empty side.
			if !p.pendingOperator && (line[pos] == '=' || line[pos] == ';') {
				p.phase = awaitingOperator
				continue
			}
			t, err := p.scanTerm(line, &pos)
			if err != nil {
				return p.failWith(err)
			}
			p.fold(t, a, b, vars)
			p.phase = awaitingOperator

		case awaitingOperator:
			opPos := pos
			op, ok := GetOperator(line, &pos)
			if !ok {
				return p.fail(StatusIllegalEquation, opPos)
			}
			switch op {
			case OpPlus, OpMinus:
				p.pendingOperator = true
				p.pendingNegative = op == OpMinus
				p.phase = awaitingTerm
			case OpEqual:
				if p.equalSignSeen {
					return p.fail(StatusMultipleEqualSigns, opPos)
				}
				p.equalSignSeen = true
				p.phase = awaitingTerm
			case OpTerminator:
				if st := p.closeEquation(equations); st.IsError() {
					return p.fail(st, opPos)
				}
			}
		}
	}
}

// endOfEquation handles a blank line.
func (p *Parser) endOfEquation(pos int, equations *int) Status {
	if !p.InProgress() {
		return p.succeed(StatusSuccessNoEquation)
	}
	if p.pendingOperator {
		return p.fail(StatusLastEquationNotTerminated, pos)
	}
	if st := p.closeEquation(equations); st.IsError() {
		return p.fail(st, pos)
	}

	return p.succeed(StatusSuccess)
}

// scanTerm reads one term at *pos. A sign is accepted only at the start of
// a side; after a binary operator the operator supplies the sign.
func (p *Parser) scanTerm(line string, pos *int) (term, error) {
	t := term{coefficient: 1}
	if p.pendingOperator {
		t.negative = p.pendingNegative
	} else {
		_, t.negative = GetSign(line, pos)
		SkipSpaces(line, pos)
	}

	start := *pos
	literal, hasNumber, err := GetNumber(line, pos, p.maxDigits)
	if err != nil {
		return t, err
	}
	if hasNumber {
		if t.coefficient, err = NumberValue(literal, start); err != nil {
			return t, err
		}
		SkipSpaces(line, pos)
	}

	name, hasVariable := GetVariableName(line, pos)
	if !hasNumber && !hasVariable {
		return t, newParseError(StatusNoTermEncountered, start)
	}
	t.variable = name

	return t, nil
}

// fold adds one term to the current row. Variables stay on the left, so
// a term after '=' changes sign; constants move to the right.
func (p *Parser) fold(t term, a *sparse.Matrix, b *sparse.Vector, vars *registry.Registry) {
	eff := t.coefficient
	if t.negative {
		eff = -eff
	}
	if p.equalSignSeen {
		eff = -eff
		p.termAfterEqual = true
	} else {
		p.termBeforeEqual = true
	}

	if t.variable != "" {
		col, _ := vars.Index(t.variable)
		a.Add(p.equationIndex, col, eff)
		p.atLeastOneVar = true
	} else {
		b.Add(p.equationIndex, -eff)
	}
	p.pendingOperator, p.pendingNegative = false, false
}

// validate checks a complete equation in fixed order.
func (p *Parser) validate() Status {
	switch {
	case !p.InProgress():
		return StatusSuccessNoEquation
	case !p.equalSignSeen:
		return StatusNoEqualSign
	case !p.termBeforeEqual:
		return StatusNoTermBeforeEqualSign
	case !p.termAfterEqual:
		return StatusNoTermAfterEqualSign
	case !p.atLeastOneVar:
		return StatusNoVariableInEquation
	}

	return StatusSuccess
}

// closeEquation validates the current equation and, on success, advances
// to the next row.
func (p *Parser) closeEquation(equations *int) Status {
	st := p.validate()
	switch st {
	case StatusSuccess:
		p.equationIndex++
		if equations != nil {
			*equations = p.equationIndex
		}
		p.resetEquation()
	case StatusSuccessNoEquation:
		p.resetEquation()
	}

	return st
}

func (p *Parser) succeed(s Status) Status {
	p.lastStatus = s
	p.errorPosition = -1
	return s
}

func (p *Parser) fail(s Status, pos int) Status {
	p.lastStatus = s
	p.errorPosition = pos
	return s
}

// failWith records a scanner *ParseError.
func (p *Parser) failWith(err error) Status {
	pe, ok := err.(*ParseError)
	if !ok {
		return p.fail(StatusIllegalEquation, 0)
	}
	return p.fail(pe.Status, pe.Position)
}
