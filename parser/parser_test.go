package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lineq/parser"
	"github.com/katalvlaran/lineq/registry"
	"github.com/katalvlaran/lineq/sparse"
)

// AssemblerSuite drives one Parser over fresh containers per test.
type AssemblerSuite struct {
	suite.Suite
	p     *parser.Parser
	a     *sparse.Matrix
	b     *sparse.Vector
	vars  *registry.Registry
	count int
}

func (s *AssemblerSuite) SetupTest() {
	s.p = parser.New()
	s.a = sparse.NewMatrix()
	s.b = sparse.NewVector()
	s.vars = registry.New()
	s.count = 0
}

// feed parses lines in order and returns the status of the last call,
// stopping at the first error.
func (s *AssemblerSuite) feed(lines ...string) parser.Status {
	st := parser.StatusSuccess
	for _, line := range lines {
		st = s.p.Parse(line, s.a, s.b, s.vars, &s.count)
		if st.IsError() {
			return st
		}
	}
	return st
}

// requireError checks the status and its offset.
func (s *AssemblerSuite) requireError(want parser.Status, pos int, lines ...string) {
	got := s.feed(lines...)
	require.Equal(s.T(), want, got, "status for %q", lines)
	require.Equal(s.T(), pos, s.p.GetErrorPosition(), "offset for %q", lines)
	require.Equal(s.T(), want, s.p.GetLastStatusValue())
}

func (s *AssemblerSuite) col(name string) int {
	c, ok := s.vars.Lookup(name)
	require.True(s.T(), ok, "variable %q not registered", name)
	return c
}

// TestSingleLineFold: 6Alpha+11=67; => A[0][Alpha]=6, b[0]=56.
func (s *AssemblerSuite) TestSingleLineFold() {
	st := s.feed("6Alpha+11=67;")
	require.Equal(s.T(), parser.StatusSuccess, st)
	require.Equal(s.T(), 1, s.count)
	require.Equal(s.T(), 6.0, s.a.Get(0, s.col("Alpha")))
	require.Equal(s.T(), 56.0, s.b.Get(0))
	require.Equal(s.T(), -1, s.p.GetErrorPosition())
	require.NoError(s.T(), s.p.Err())
}

// TestSignedCoefficients: a*X + b = c*Y - d.
func (s *AssemblerSuite) TestSignedCoefficients() {
	require.Equal(s.T(), parser.StatusSuccess, s.feed("2 X + 3 = 5 Y - 7;"))
	require.Equal(s.T(), 2.0, s.a.Get(0, s.col("X")))
	require.Equal(s.T(), -5.0, s.a.Get(0, s.col("Y")))
	require.Equal(s.T(), -10.0, s.b.Get(0), "2X - 5Y = -7 - 3")
	require.Equal(s.T(), 2, s.a.Len())
}

// TestChainedEquations: A, B, C over three lines plus a flush.
func (s *AssemblerSuite) TestChainedEquations() {
	st := s.feed("A = 1 ;", "B = 2 A;", "C = 2 B", "")
	require.Equal(s.T(), parser.StatusSuccess, st)
	require.Equal(s.T(), 3, s.count)
	require.Equal(s.T(), 3, s.p.Equations())
	require.Equal(s.T(), []string{"A", "B", "C"}, s.vars.Names())

	require.Equal(s.T(), 1.0, s.a.Get(0, 0))
	require.Equal(s.T(), 1.0, s.b.Get(0))
	require.Equal(s.T(), 1.0, s.a.Get(1, 1))
	require.Equal(s.T(), -2.0, s.a.Get(1, 0))
	require.Equal(s.T(), 1.0, s.a.Get(2, 2))
	require.Equal(s.T(), -2.0, s.a.Get(2, 1))
	require.Zero(s.T(), s.b.Get(2))
}

// TestRegistryRoundTrip: a name keeps its column across equations.
func (s *AssemblerSuite) TestRegistryRoundTrip() {
	require.Equal(s.T(), parser.StatusSuccess, s.feed("A + B = 1;", "B - A = 2;", "A + A = 0;"))
	require.Equal(s.T(), 2, s.vars.Len())
	require.Equal(s.T(), 0, s.col("A"))
	require.Equal(s.T(), 1, s.col("B"))
	require.Equal(s.T(), -1.0, s.a.Get(1, 0))
	require.Equal(s.T(), 1.0, s.a.Get(1, 1))
	require.Equal(s.T(), 2.0, s.a.Get(2, 0), "repeated terms accumulate")
}

// TestMultiLineEquation: a binary operator at end of line continues the
// equation on the next one.
func (s *AssemblerSuite) TestMultiLineEquation() {
	require.Equal(s.T(), parser.StatusSuccess, s.feed("X +", "Y =", "3;"))
	require.Equal(s.T(), 1, s.count)
	require.Equal(s.T(), 1.0, s.a.Get(0, s.col("Y")))
	require.Equal(s.T(), 3.0, s.b.Get(0))
}

// TestScientificLiteral: the documented example line with a '^' exponent.
func (s *AssemblerSuite) TestScientificLiteral() {
	st := s.feed("4.234^-05 + Gamma = 1000.0 Alpha + 2.0 Beta - 0.05", "")
	require.Equal(s.T(), parser.StatusSuccess, st)
	require.Equal(s.T(), 1.0, s.a.Get(0, s.col("Gamma")))
	require.Equal(s.T(), -1000.0, s.a.Get(0, s.col("Alpha")))
	require.Equal(s.T(), -2.0, s.a.Get(0, s.col("Beta")))
	require.InDelta(s.T(), -0.05-4.234e-5, s.b.Get(0), 1e-15)
}

// TestUnarySigns: a sign may open either side.
func (s *AssemblerSuite) TestUnarySigns() {
	require.Equal(s.T(), parser.StatusSuccess, s.feed("-X = -3;", "+ Y = + .5;"))
	require.Equal(s.T(), -1.0, s.a.Get(0, s.col("X")))
	require.Equal(s.T(), -3.0, s.b.Get(0))
	require.Equal(s.T(), 1.0, s.a.Get(1, s.col("Y")))
	require.Equal(s.T(), 0.5, s.b.Get(1))
}

// TestEmptyEquationsAreNoOps: ";;" and blank lines close nothing.
func (s *AssemblerSuite) TestEmptyEquationsAreNoOps() {
	require.Equal(s.T(), parser.StatusSuccess, s.feed(";;", " ; "))
	require.Zero(s.T(), s.count)
	require.Equal(s.T(), parser.StatusSuccessNoEquation, s.feed(""))
	require.Equal(s.T(), parser.StatusSuccessNoEquation, s.feed(" \t"))
	require.Equal(s.T(), -1, s.p.GetErrorPosition())
}

// TestFlushAfterTerminator: a trailing blank after ';' has nothing pending.
func (s *AssemblerSuite) TestFlushAfterTerminator() {
	require.Equal(s.T(), parser.StatusSuccess, s.feed("X = 1;"))
	require.Equal(s.T(), parser.StatusSuccessNoEquation, s.feed(""))
	require.Equal(s.T(), 1, s.count)
}

func (s *AssemblerSuite) TestDanglingOperatorOnFlush() {
	require.Equal(s.T(), parser.StatusSuccess, s.feed("X = 3 +"))
	s.requireError(parser.StatusLastEquationNotTerminated, 2, "  ")
	require.ErrorIs(s.T(), s.p.Err(), parser.ErrLastEquationNotTerminated)
}

func (s *AssemblerSuite) TestMissingTermAfterOperator() {
	s.requireError(parser.StatusNoTermEncountered, 4, "X + = 3")
}

func (s *AssemblerSuite) TestNoUnarySignAfterBinaryOperator() {
	s.requireError(parser.StatusNoTermEncountered, 4, "X - -3 = 0;")
}

func (s *AssemblerSuite) TestDanglingUnarySign() {
	s.requireError(parser.StatusNoTermEncountered, 5, "X = -")
}

func (s *AssemblerSuite) TestTokensDoNotJoinAcrossLines() {
	require.Equal(s.T(), parser.StatusSuccess, s.feed("X = 12"))
	s.requireError(parser.StatusIllegalEquation, 0, "34;")
}

func (s *AssemblerSuite) TestValidationErrors() {
	cases := []struct {
		line string
		want parser.Status
		pos  int
	}{
		{"X;", parser.StatusNoEqualSign, 1},
		{"= X;", parser.StatusNoTermBeforeEqualSign, 3},
		{"X = ;", parser.StatusNoTermAfterEqualSign, 4},
		{"1 = 2;", parser.StatusNoVariableInEquation, 5},
		{"X = 1 = 2;", parser.StatusMultipleEqualSigns, 6},
		{"X = 1 $", parser.StatusIllegalEquation, 6},
		{"X = 3 4;", parser.StatusIllegalEquation, 6},
		{"X = 1.2.3;", parser.StatusMultipleDecimalPoints, 7},
		{"X = 1^999;", parser.StatusIllegalExponent, 5},
	}
	for _, tc := range cases {
		s.SetupTest()
		s.requireError(tc.want, tc.pos, tc.line)
	}
}

// TestValidationOnFlush: errors raised by a blank line point at its end.
func (s *AssemblerSuite) TestValidationOnFlush() {
	require.Equal(s.T(), parser.StatusSuccess, s.feed("X + 1"))
	s.requireError(parser.StatusNoEqualSign, 0, "")
}

func (s *AssemblerSuite) TestExponentBoundaries() {
	cases := []struct {
		line string
		want parser.Status
		pos  int
	}{
		{"X = 3^", parser.StatusMissingExponent, 6},
		{"X = 3^-", parser.StatusMissingExponent, 7},
		{"X = 3^a;", parser.StatusMissingExponent, 6},
		{"X = 3^+a", parser.StatusIllegalExponent, 7},
	}
	for _, tc := range cases {
		s.SetupTest()
		s.requireError(tc.want, tc.pos, tc.line)
	}

	s.SetupTest()
	require.Equal(s.T(), parser.StatusSuccess, s.feed("X = 3^-2;"))
	require.InDelta(s.T(), 0.03, s.b.Get(0), 1e-15)
}

func (s *AssemblerSuite) TestDigitLimit() {
	full := strings.Repeat("1", parser.DefaultMaxDigits)
	require.Equal(s.T(), parser.StatusSuccess, s.feed("X = "+full+";"))

	s.SetupTest()
	s.requireError(parser.StatusTooManyDigits, 4+parser.DefaultMaxDigits, "X = "+full+"1;")

	s.SetupTest()
	s.requireError(parser.StatusTooManyDigits, 6+parser.DefaultMaxDigits, "X = 1."+full+"1;")
}

func (s *AssemblerSuite) TestWithMaxDigits() {
	s.p = parser.New(parser.WithMaxDigits(3))
	require.Equal(s.T(), parser.StatusSuccess, s.feed("X = 999.999^-99;"))

	s.p = parser.New(parser.WithMaxDigits(3))
	s.requireError(parser.StatusTooManyDigits, 7, "X = 1001;")
}

// TestResetIdempotence: Reset then re-parse on fresh containers reproduces
// a single uninterrupted run.
func (s *AssemblerSuite) TestResetIdempotence() {
	lines := []string{"2 A + B = 4;", "A - B =", "1", "", "C = A + B;"}
	require.Equal(s.T(), parser.StatusSuccess, s.feed(lines...))
	wantA, wantB, wantVars, wantCount := s.a, s.b, s.vars, s.count

	s.a, s.b, s.vars = sparse.NewMatrix(), sparse.NewVector(), registry.New()
	require.Equal(s.T(), parser.StatusIllegalEquation, s.feed("X = ?"))
	s.p.Reset()
	require.Equal(s.T(), parser.StatusSuccess, s.p.GetLastStatusValue())
	require.Zero(s.T(), s.p.Equations())

	s.a, s.b, s.vars, s.count = sparse.NewMatrix(), sparse.NewVector(), registry.New(), 0
	require.Equal(s.T(), parser.StatusSuccess, s.feed(lines...))

	require.Equal(s.T(), wantCount, s.count)
	require.Equal(s.T(), wantVars.Names(), s.vars.Names())
	require.Equal(s.T(), wantB.Keys(), s.b.Keys())
	for _, k := range s.a.Keys() {
		require.Equal(s.T(), s.a.Get(k.Row, k.Col), wantA.Get(k.Row, k.Col))
	}
	require.Equal(s.T(), wantA.Len(), s.a.Len())
}

func (s *AssemblerSuite) TestErrWrapsSentinel() {
	s.requireError(parser.StatusMultipleEqualSigns, 4, "X = = 1;")

	err := s.p.Err()
	require.ErrorIs(s.T(), err, parser.ErrMultipleEqualSigns)

	var pe *parser.ParseError
	require.True(s.T(), errors.As(err, &pe))
	require.Equal(s.T(), 4, pe.Position)
	require.Equal(s.T(), "parser: multiple equal signs at offset 4", pe.Error())
}

func (s *AssemblerSuite) TestNilEquationCounter() {
	st := s.p.Parse("X = 1;", s.a, s.b, s.vars, nil)
	require.Equal(s.T(), parser.StatusSuccess, st)
	require.Equal(s.T(), 1, s.p.Equations())
}

func TestAssemblerSuite(t *testing.T) {
	suite.Run(t, new(AssemblerSuite))
}

func TestWithMaxDigits_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { parser.WithMaxDigits(0) })
}
