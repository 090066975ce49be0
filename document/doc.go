// Package document reads an equation file into a solvable system.
//
// Load scans its input line by line, strips "//" comments, hands each line
// to a fresh parser.Parser and finishes with the blank-line flush that
// closes a final equation written without ';'. Parsing stops at the first
// error, which is reported as a *LineError with a 1-based line number and
// the 0-based column inside that line.
//
// A loaded System must have exactly as many equations as distinct
// variables before it can be solved; Validate reports the mismatch and
// names the blocks that cause it.
package document
