// Package lineq solves systems of linear equations written as plain text.
//
// 🚀 What is lineq?
//
//	A small toolkit that turns a file like
//
//		6Alpha+11=67;
//		8 Beta + 23 = 4.5 - Alpha
//
//		4.234^-05 + Gamma = 1000.0 Alpha + 2.0 Beta - 0.05
//
//	into named values, and reports mistakes by line and column.
//
// ✨ Why lineq?
//
//   - Incremental: equations may span lines and are assembled as they arrive
//   - Precise errors: twelve distinct parse errors, each with an offset
//   - Sparse by default: only non-zero coefficients are stored
//   - Direct or iterative: Gauss, Jacobi, Gauss–Seidel and SOR
//
// Under the hood, everything is organized under these subpackages:
//
//	parser/     line-by-line equation assembler and its lexical scanners
//	sparse/     sparse coefficient matrix and constant vector
//	registry/   variable name ↔ column index map
//	matrix/     dense kernels: elimination and stationary iterations
//	solver/     method selection and diagnostics over the kernels
//	structure/  independent blocks of the equation–variable graph
//	document/   whole-file loading, validation and solving
//	config/     TOML configuration
//	report/     text and YAML rendering
//	cmd/lineq/  the command-line tool (solve, check, watch, version)
//
//	go install github.com/katalvlaran/lineq/cmd/lineq@latest
package lineq
