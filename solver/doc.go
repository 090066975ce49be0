// Package solver turns an assembled sparse system into a solution vector.
//
// What
//
//   - Solve(n, A, b) materializes the n×n system and returns x with A·x = b.
//   - SolveDetailed additionally reports the method, iteration count and
//     final residual ‖A·x − b‖∞.
//   - Methods:
//   - MethodGauss       direct elimination with partial pivoting (default)
//   - MethodJacobi      stationary iteration from the previous iterate
//   - MethodGaussSeidel stationary iteration with in-place updates
//   - MethodSOR         Gauss–Seidel with relaxation factor ω ∈ (0, 2)
//
// Why
//
//	Equation documents are mostly small and dense enough that direct
//	elimination is the right default. The iterative methods serve large,
//	diagonally dominant documents, where a tolerance and an initial guess
//	are more natural than an exact factorization.
//
// Errors
//
//	Every failure is a *SolveError carrying the Method; it unwraps to one of
//	ErrEmptySystem, ErrSingular, ErrZeroDiagonal, ErrNotConverged,
//	ErrOptionViolation or a matrix/sparse shape error.
//
// Usage
//
//	x, err := solver.Solve(n, a, b)
//	res, err := solver.SolveDetailed(n, a, b,
//	    solver.WithMethod(solver.MethodSOR), solver.WithOmega(1.2))
package solver
