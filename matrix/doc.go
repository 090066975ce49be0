// Package matrix provides the dense numeric kernels that turn an assembled
// linear system into a solution vector.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked row-major float64 matrix behind the Matrix
//     interface.
//   - Central validators (nil, square, vector length, finite values).
//   - Direct solving via Gaussian elimination with partial pivoting.
//   - Stationary iterative solvers: Jacobi, Gauss–Seidel and SOR.
//
// All kernels are deterministic (fixed loop orders, no map iteration) and
// never mutate their inputs. Errors are package sentinels, wrapped with an
// operation tag; match them with errors.Is.
//
// Sparse assembly lives in package sparse; this package only sees the
// materialized n×n system.
package matrix
