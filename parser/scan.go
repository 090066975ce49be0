// SPDX-License-Identifier: MIT

package parser

import (
	"errors"
	"strconv"
)

// Operator is a separator recognized between terms.
type Operator byte

const (
	OpPlus       Operator = '+'
	OpMinus      Operator = '-'
	OpEqual      Operator = '='
	OpTerminator Operator = ';'
)

// String returns the operator character.
func (o Operator) String() string { return string(rune(o)) }

func isSpace(c byte) bool  { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' }

// SkipSpaces advances *pos past blanks (space, tab and line-end characters).
func SkipSpaces(line string, pos *int) {
	for *pos < len(line) && isSpace(line[*pos]) {
		*pos++
	}
}

// GetSign skips blanks and consumes a leading '+' or '-'.
// found is false, and only blanks are consumed, when no sign is present.
func GetSign(line string, pos *int) (found, negative bool) {
	SkipSpaces(line, pos)
	if *pos >= len(line) {
		return false, false
	}
	switch line[*pos] {
	case '+':
		*pos++
		return true, false
	case '-':
		*pos++
		return true, true
	}

	return false, false
}

// GetNumber consumes a decimal literal at *pos:
//
//	digits [ '.' digits ] [ '^' [sign] digits ]
//
// where either the integer or the fraction part may be empty but not both.
// ok is false, and *pos is unchanged, when no number starts at *pos.
// A malformed literal yields a *ParseError and leaves *pos undefined.
func GetNumber(line string, pos *int, maxDigits int) (literal string, ok bool, err error) {
	start, i, n := *pos, *pos, len(line)

	// digits consumes one run and enforces the per-run limit.
	digits := func() (int, error) {
		count := 0
		for i < n && isDigit(line[i]) {
			count++
			if count > maxDigits {
				return count, newParseError(StatusTooManyDigits, i)
			}
			i++
		}
		return count, nil
	}

	intDigits, err := digits()
	if err != nil {
		return "", false, err
	}
	if i < n && line[i] == '.' {
		if intDigits == 0 && (i+1 >= n || !isDigit(line[i+1])) {
			return "", false, nil
		}
		i++
		if _, err = digits(); err != nil {
			return "", false, err
		}
		if i < n && line[i] == '.' {
			return "", false, newParseError(StatusMultipleDecimalPoints, i)
		}
	} else if intDigits == 0 {
		return "", false, nil
	}

	if i < n && line[i] == '^' {
		i++
		signed := false
		if i < n && (line[i] == '+' || line[i] == '-') {
			signed = true
			i++
		}
		expDigits, err := digits()
		if err != nil {
			return "", false, err
		}
		if expDigits == 0 {
			if signed && i < n {
				return "", false, newParseError(StatusIllegalExponent, i)
			}
			return "", false, newParseError(StatusMissingExponent, i)
		}
	}

	*pos = i

	return line[start:i], true, nil
}

// NumberValue converts a literal accepted by GetNumber to float64. offset is
// the literal's position in its line; an out-of-range exponent is reported
// as StatusIllegalExponent at the '^'.
func NumberValue(literal string, offset int) (float64, error) {
	mantissa, exponent := literal, ""
	caret := -1
	for i := 0; i < len(literal); i++ {
		if literal[i] == '^' {
			caret = i
			mantissa, exponent = literal[:i], literal[i+1:]
			break
		}
	}
	text := mantissa
	if caret >= 0 {
		text = mantissa + "e" + exponent
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if caret >= 0 && errors.Is(err, strconv.ErrRange) {
			return 0, newParseError(StatusIllegalExponent, offset+caret)
		}
		return 0, newParseError(StatusIllegalEquation, offset)
	}

	return v, nil
}

// GetVariableName consumes a maximal run of letters and '_' at *pos.
// ok is false, and *pos is unchanged, when the run is empty.
func GetVariableName(line string, pos *int) (name string, ok bool) {
	start := *pos
	for *pos < len(line) && isLetter(line[*pos]) {
		*pos++
	}
	if *pos == start {
		return "", false
	}

	return line[start:*pos], true
}

// GetOperator skips blanks and consumes one of '+', '-', '=' or ';'.
// ok is false when the next non-blank character is none of them; only the
// blanks are consumed in that case.
func GetOperator(line string, pos *int) (op Operator, ok bool) {
	SkipSpaces(line, pos)
	if *pos >= len(line) {
		return 0, false
	}
	switch c := Operator(line[*pos]); c {
	case OpPlus, OpMinus, OpEqual, OpTerminator:
		*pos++
		return c, true
	}

	return 0, false
}
