// Package sparse holds the incrementally assembled linear system: a
// coefficient matrix keyed by (equation row, variable column) and a constant
// vector keyed by equation row.
//
// Both containers are truly sparse: reading an absent key yields 0, and
// writing 0 (or accumulating to exactly 0) removes the key. Neither has a
// fixed shape; rows and columns grow independently as equations and
// variables appear, and the shape is fixed only when the system is
// materialized for a solver via Matrix.Dense / Vector.Slice.
//
// The containers are not safe for concurrent mutation; a single driver
// owns them for the lifetime of one document.
package sparse
