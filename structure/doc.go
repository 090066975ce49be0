// Package structure splits an assembled system into independent blocks.
//
// What
//
//	Equations and variables form a bipartite incidence graph: equation i
//	touches variable j when A[i, j] != 0. Each connected component is a
//	Block that can be solved on its own. A block with more variables than
//	equations is underdetermined, one with fewer is overdetermined.
//
// Why
//
//	A document can have as many equations as variables overall and still
//	be unsolvable because one group of equations pins down too few of its
//	variables. Blocks localizes that mismatch to concrete rows and names.
//
// Determinism
//
//	Rows are seeded in ascending order and neighbors are visited in
//	ascending index order, so block order and content are reproducible.
//
// Complexity: O(R + C + NNZ) time and memory.
package structure
