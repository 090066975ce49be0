// Package parser assembles a sparse linear system from equation text, one
// line at a time.
//
// What & Why:
//
//	A document is a sequence of linear equations such as
//
//	    6Alpha + 11 = 67;
//	    8 Beta + 23 = 4.5 - Alpha
//
//	    4.234^-05 + Gamma = 1000.0 Alpha + 2.0 Beta - 0.05
//
//	Terms are separated by '+', '-' or '='. A term is an optional sign, an
//	optional decimal number (with an optional '^' exponent) and an optional
//	variable name made of letters and '_'; at least one of number or name
//	must be present. An equation ends at ';' or at a blank line and may span
//	any number of lines, but a single term never spans two lines.
//
//	Parser is the stateful assembler. Each call to Parse scans one line,
//	folds every recognized term into the caller's sparse.Matrix,
//	sparse.Vector and registry.Registry, and keeps the half-finished
//	equation (phase, flags, current row) for the next call. Variables
//	accumulate on the left and constants on the right, so every row reads
//	A[row]·x = b[row].
//
// Errors:
//
//	Parse returns a Status. The twelve error statuses carry the 0-based
//	offset into the offending line (GetErrorPosition) and map onto sentinel
//	errors (ErrIllegalEquation, ...) via Err, for use with errors.Is.
//
// Concurrency:
//
//	A Parser is single-threaded and not reentrant. Use one Parser (with its
//	own matrix, vector and registry) per document; independent documents
//	can be parsed in parallel.
//
// Flush:
//
//	After the last real line, the driver must call Parse once more with an
//	empty line so that a final equation without ';' is validated and closed.
package parser
