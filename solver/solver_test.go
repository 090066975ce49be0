package solver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lineq/matrix"
	"github.com/katalvlaran/lineq/solver"
	"github.com/katalvlaran/lineq/sparse"
)

// system3 is a diagonally dominant 3×3 system with solution (1, 2, 3).
func system3() (*sparse.Matrix, *sparse.Vector) {
	a, b := sparse.NewMatrix(), sparse.NewVector()
	rows := [][]float64{{10, -1, 2}, {-1, 11, -1}, {2, -1, 10}}
	for i, row := range rows {
		sum := 0.0
		for j, v := range row {
			a.Set(i, j, v)
			sum += v * float64(j+1)
		}
		b.Set(i, sum)
	}
	return a, b
}

func TestSolve_AllMethods(t *testing.T) {
	for _, m := range []solver.Method{solver.MethodGauss, solver.MethodJacobi, solver.MethodGaussSeidel, solver.MethodSOR} {
		t.Run(m.String(), func(t *testing.T) {
			a, b := system3()
			res, err := solver.SolveDetailed(3, a, b, solver.WithMethod(m), solver.WithTolerance(1e-11), solver.WithOmega(1.1))
			require.NoError(t, err)
			require.Equal(t, m, res.Method)
			for i, want := range []float64{1, 2, 3} {
				assert.InDelta(t, want, res.X[i], 1e-9)
			}
			assert.Less(t, res.Residual, 1e-9)
			if m == solver.MethodGauss {
				assert.Zero(t, res.Iterations)
			} else {
				assert.Positive(t, res.Iterations)
			}
		})
	}
}

func TestSolve_Empty(t *testing.T) {
	_, err := solver.Solve(0, sparse.NewMatrix(), sparse.NewVector())
	require.ErrorIs(t, err, solver.ErrEmptySystem)

	var se *solver.SolveError
	require.True(t, errors.As(err, &se))
	require.Equal(t, solver.MethodGauss, se.Method)
}

func TestSolve_Singular(t *testing.T) {
	a, b := sparse.NewMatrix(), sparse.NewVector()
	a.Set(0, 0, 1)
	a.Set(0, 1, 1)
	a.Set(1, 0, 2)
	a.Set(1, 1, 2)
	b.Set(0, 1)

	_, err := solver.Solve(2, a, b)
	require.ErrorIs(t, err, solver.ErrSingular)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolve_ShapeMismatch(t *testing.T) {
	a, b := system3()
	_, err := solver.Solve(2, a, b)
	require.ErrorIs(t, err, sparse.ErrShapeTooSmall)
}

func TestSolve_NotConvergedKeepsPartialResult(t *testing.T) {
	a, b := sparse.NewMatrix(), sparse.NewVector()
	a.Set(0, 0, 1)
	a.Set(0, 1, 3)
	a.Set(1, 0, 3)
	a.Set(1, 1, 1)
	b.Set(0, 4)
	b.Set(1, 4)

	res, err := solver.SolveDetailed(2, a, b, solver.WithMethod(solver.MethodJacobi), solver.WithMaxIterations(10))
	require.ErrorIs(t, err, solver.ErrNotConverged)
	require.NotNil(t, res)
	require.Equal(t, 10, res.Iterations)
}

func TestSolve_ZeroDiagonal(t *testing.T) {
	a, b := sparse.NewMatrix(), sparse.NewVector()
	a.Set(0, 1, 1)
	a.Set(1, 0, 1)

	_, err := solver.Solve(2, a, b, solver.WithMethod(solver.MethodGaussSeidel))
	require.ErrorIs(t, err, solver.ErrZeroDiagonal)
}

func TestOptions_Violations(t *testing.T) {
	a, b := system3()
	for name, opt := range map[string]solver.Option{
		"tolerance":  solver.WithTolerance(0),
		"iterations": solver.WithMaxIterations(-1),
		"omega":      solver.WithOmega(2),
		"method":     solver.WithMethod(solver.Method(42)),
	} {
		_, err := solver.Solve(3, a, b, opt)
		require.ErrorIs(t, err, solver.ErrOptionViolation, name)
	}

	_, err := solver.Solve(3, a, b, solver.WithMethod(solver.MethodJacobi), solver.WithInitialGuess([]float64{1}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]solver.Method{
		"":             solver.MethodGauss,
		"Gauss":        solver.MethodGauss,
		"jacobi":       solver.MethodJacobi,
		"GS":           solver.MethodGaussSeidel,
		"gauss-seidel": solver.MethodGaussSeidel,
		" sor ":        solver.MethodSOR,
	} {
		got, err := solver.ParseMethod(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := solver.ParseMethod("cholesky")
	require.ErrorIs(t, err, solver.ErrUnknownMethod)
	require.Equal(t, "method(9)", solver.Method(9).String())
}
