// SPDX-License-Identifier: MIT

package document

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/lineq/parser"
	"github.com/katalvlaran/lineq/registry"
	"github.com/katalvlaran/lineq/solver"
	"github.com/katalvlaran/lineq/sparse"
	"github.com/katalvlaran/lineq/structure"
)

// DefaultExtension is appended by ResolvePath to names without one.
const DefaultExtension = ".txt"

// commentMarker starts a comment that runs to the end of the line.
const commentMarker = "//"

// System is a fully parsed document: A·x = B over the registered variables.
type System struct {
	A         *sparse.Matrix
	B         *sparse.Vector
	Vars      *registry.Registry
	Equations int
	Lines     int // physical lines read
}

// Assignment is one solved variable.
type Assignment struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
}

// Solution pairs each variable name with its value. Names and Values are in
// column order.
type Solution struct {
	Names  []string
	Values []float64
	Result *solver.Result
}

// Sorted returns the assignments in name order.
func (s *Solution) Sorted() []Assignment {
	out := make([]Assignment, len(s.Names))
	for i, name := range s.Names {
		out[i] = Assignment{Name: name, Value: s.Values[i]}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// ResolvePath appends DefaultExtension when name has no extension.
func ResolvePath(name string) string {
	if filepath.Ext(name) == "" {
		return name + DefaultExtension
	}
	return name
}

// StripComment removes a "//" comment and everything after it.
func StripComment(line string) string {
	before, _, _ := strings.Cut(line, commentMarker)
	return before
}

// LoadFile opens path and calls Load.
func LoadFile(path string, opts ...Option) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load parses a whole document. Parse failures are returned as *LineError;
// I/O failures are wrapped as-is.
func Load(r io.Reader, opts ...Option) (*System, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	sys := &System{A: sparse.NewMatrix(), B: sparse.NewVector(), Vars: registry.New()}
	p := parser.New(o.Parser...)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), max(o.MaxLineLength+2, bufio.MaxScanTokenSize))

	for sc.Scan() {
		sys.Lines++
		raw := sc.Text()
		if len(raw) > o.MaxLineLength {
			return nil, tooLong(sys.Lines, o.MaxLineLength)
		}
		line := StripComment(raw)
		st := p.Parse(line, sys.A, sys.B, sys.Vars, &sys.Equations)
		o.Logger.Debug("parsed line", "line", sys.Lines, "status", st.String(), "equations", sys.Equations)
		if st.IsError() {
			return nil, lineError(sys.Lines, p)
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, tooLong(sys.Lines+1, o.MaxLineLength)
		}
		return nil, fmt.Errorf("document: read: %w", err)
	}

	// Flush: a blank line closes a final equation written without ';'.
	// Its errors are reported on the virtual line after the last one.
	if st := p.Parse("", sys.A, sys.B, sys.Vars, &sys.Equations); st.IsError() {
		return nil, lineError(sys.Lines+1, p)
	}
	o.Logger.Debug("document loaded", "lines", sys.Lines, "equations", sys.Equations, "variables", sys.Vars.Len())

	return sys, nil
}

func lineError(line int, p *parser.Parser) *LineError {
	st := p.GetLastStatusValue()
	return &LineError{Line: line, Column: p.GetErrorPosition(), Status: st, Err: st.Err()}
}

func tooLong(line, limit int) *LineError {
	return &LineError{
		Line:   line,
		Column: limit,
		Status: parser.StatusIllegalEquation,
		Err:    fmt.Errorf("%w (limit %d)", ErrLineTooLong, limit),
	}
}

// Blocks decomposes the system into independent blocks.
func (s *System) Blocks() []structure.Block {
	return structure.Blocks(s.A, s.Equations, s.Vars.Len())
}

// Validate checks that the system is square.
func (s *System) Validate() error {
	vars := s.Vars.Len()
	switch {
	case s.Equations == 0 && vars == 0:
		return ErrNoEquations
	case vars != s.Equations:
		return &CountError{
			Variables: vars,
			Equations: s.Equations,
			Blocks:    structure.Diagnose(s.Blocks()),
		}
	}

	return nil
}

// Solve validates and solves the system.
func (s *System) Solve(opts ...solver.Option) (*Solution, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	res, err := solver.SolveDetailed(s.Equations, s.A, s.B, opts...)
	if err != nil {
		return nil, err
	}

	return &Solution{Names: s.Vars.Names(), Values: res.X, Result: res}, nil
}
