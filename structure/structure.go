// SPDX-License-Identifier: MIT

package structure

import (
	"sort"

	"github.com/katalvlaran/lineq/sparse"
)

// Balance classifies a block by its equation/variable counts.
type Balance int

const (
	Determined Balance = iota
	Underdetermined
	Overdetermined
)

// String returns a lower-case label.
func (b Balance) String() string {
	switch b {
	case Determined:
		return "determined"
	case Underdetermined:
		return "underdetermined"
	case Overdetermined:
		return "overdetermined"
	}
	return "unknown"
}

// Block is one connected component: sorted equation rows and variable
// columns.
type Block struct {
	Rows []int
	Cols []int
}

// Square reports whether the block has as many equations as variables.
func (b Block) Square() bool { return len(b.Rows) == len(b.Cols) }

// Balance classifies the block.
func (b Block) Balance() Balance {
	switch {
	case len(b.Rows) < len(b.Cols):
		return Underdetermined
	case len(b.Rows) > len(b.Cols):
		return Overdetermined
	}
	return Determined
}

// node addresses either an equation row or a variable column.
type node struct {
	col   bool
	index int
}

// walker holds the incidence lists and visit marks of one decomposition.
type walker struct {
	rowAdj  [][]int
	colAdj  [][]int
	rowSeen []bool
	colSeen []bool
	queue   []node
}

// Blocks returns the connected components of the equation–variable
// incidence graph of the first equations rows and variables columns of a.
// Variables with no non-zero coefficient form single-column blocks, and
// equations with none form single-row blocks.
func Blocks(a *sparse.Matrix, equations, variables int) []Block {
	if equations < 0 {
		equations = 0
	}
	if variables < 0 {
		variables = 0
	}
	w := &walker{
		rowAdj:  make([][]int, equations),
		colAdj:  make([][]int, variables),
		rowSeen: make([]bool, equations),
		colSeen: make([]bool, variables),
	}
	if a != nil {
		// Keys is row-major, so both adjacency lists come out sorted.
		for _, k := range a.Keys() {
			if k.Row >= equations || k.Col >= variables {
				continue
			}
			w.rowAdj[k.Row] = append(w.rowAdj[k.Row], k.Col)
			w.colAdj[k.Col] = append(w.colAdj[k.Col], k.Row)
		}
	}

	var blocks []Block
	for r := 0; r < equations; r++ {
		if !w.rowSeen[r] {
			blocks = append(blocks, w.component(node{index: r}))
		}
	}
	for c := 0; c < variables; c++ {
		if !w.colSeen[c] {
			blocks = append(blocks, w.component(node{col: true, index: c}))
		}
	}

	return blocks
}

// component runs one BFS from start and collects the block it reaches.
func (w *walker) component(start node) Block {
	var blk Block
	w.enqueue(start)
	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		if cur.col {
			blk.Cols = append(blk.Cols, cur.index)
			for _, r := range w.colAdj[cur.index] {
				if !w.rowSeen[r] {
					w.enqueue(node{index: r})
				}
			}
			continue
		}
		blk.Rows = append(blk.Rows, cur.index)
		for _, c := range w.rowAdj[cur.index] {
			if !w.colSeen[c] {
				w.enqueue(node{col: true, index: c})
			}
		}
	}
	sort.Ints(blk.Rows)
	sort.Ints(blk.Cols)

	return blk
}

// enqueue marks n visited and appends it to the queue.
func (w *walker) enqueue(n node) {
	if n.col {
		w.colSeen[n.index] = true
	} else {
		w.rowSeen[n.index] = true
	}
	w.queue = append(w.queue, n)
}

// Diagnose returns the blocks that are not square, in input order.
func Diagnose(blocks []Block) []Block {
	var out []Block
	for _, b := range blocks {
		if !b.Square() {
			out = append(out, b)
		}
	}
	return out
}
