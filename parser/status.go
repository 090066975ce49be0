// SPDX-License-Identifier: MIT

package parser

// Status is the outcome of the most recent Parse call.
type Status int

const (
	// StatusSuccess: the line was consumed; zero or more equations closed.
	StatusSuccess Status = iota
	// StatusSuccessNoEquation: a blank line with no equation pending.
	StatusSuccessNoEquation
	StatusIllegalEquation
	StatusLastEquationNotTerminated
	StatusNoEqualSign
	StatusMultipleEqualSigns
	StatusNoTermBeforeEqualSign
	StatusNoTermAfterEqualSign
	StatusNoTermEncountered
	StatusNoVariableInEquation
	StatusMultipleDecimalPoints
	StatusTooManyDigits
	StatusMissingExponent
	StatusIllegalExponent
)

// statusInfo holds the stable name, the human message and the sentinel of
// each status, indexed by Status.
var statusInfo = [...]struct {
	name    string
	message string
	err     error
}{
	StatusSuccess:                   {"SUCCESS", "Success", nil},
	StatusSuccessNoEquation:         {"SUCCESS_NO_EQUATION", "Success - no equation", nil},
	StatusIllegalEquation:           {"ERROR_ILLEGAL_EQUATION", "Illegal equation", ErrIllegalEquation},
	StatusLastEquationNotTerminated: {"ERROR_LAST_EQUATION_NOT_TERMINATED", "Last equation not terminated", ErrLastEquationNotTerminated},
	StatusNoEqualSign:               {"ERROR_NO_EQUAL_SIGN", "No equal sign in equation", ErrNoEqualSign},
	StatusMultipleEqualSigns:        {"ERROR_MULTIPLE_EQUAL_SIGNS", "More than one equal sign in equation", ErrMultipleEqualSigns},
	StatusNoTermBeforeEqualSign:     {"ERROR_NO_TERM_BEFORE_EQUAL_SIGN", "No term before the equal sign", ErrNoTermBeforeEqualSign},
	StatusNoTermAfterEqualSign:      {"ERROR_NO_TERM_AFTER_EQUAL_SIGN", "No term after the equal sign", ErrNoTermAfterEqualSign},
	StatusNoTermEncountered:         {"ERROR_NO_TERM_ENCOUNTERED", "A term was expected but none was found", ErrNoTermEncountered},
	StatusNoVariableInEquation:      {"ERROR_NO_VARIABLE_IN_EQUATION", "No variable in equation", ErrNoVariableInEquation},
	StatusMultipleDecimalPoints:     {"ERROR_MULTIPLE_DECIMAL_POINTS", "A number contains more than one decimal point", ErrMultipleDecimalPoints},
	StatusTooManyDigits:             {"ERROR_TOO_MANY_DIGITS", "A number contains too many digits", ErrTooManyDigits},
	StatusMissingExponent:           {"ERROR_MISSING_EXPONENT", "A number is missing its exponent digits", ErrMissingExponent},
	StatusIllegalExponent:           {"ERROR_ILLEGAL_EXPONENT", "A number has an illegal exponent", ErrIllegalExponent},
}

func (s Status) valid() bool { return s >= 0 && int(s) < len(statusInfo) }

// String returns the stable constant name, e.g. "ERROR_NO_EQUAL_SIGN".
func (s Status) String() string {
	if !s.valid() {
		return "UNKNOWN_STATUS"
	}
	return statusInfo[s].name
}

// Message returns a human-readable description of the status.
func (s Status) Message() string {
	if !s.valid() {
		return "Unknown status"
	}
	return statusInfo[s].message
}

// IsError reports whether s is one of the twelve error statuses.
func (s Status) IsError() bool {
	return s.valid() && s != StatusSuccess && s != StatusSuccessNoEquation
}

// Err returns the sentinel error for an error status and nil otherwise.
func (s Status) Err() error {
	if !s.valid() {
		return nil
	}
	return statusInfo[s].err
}

// GetStatusString returns the human-readable text for status.
func GetStatusString(status Status) string { return status.Message() }
