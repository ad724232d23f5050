package physics

import "math"

// SpatialGrid is a uniform grid for broad-phase collision detection on a wrapping playfield.
// Items are inserted by position and index, then nearby items can be queried
// via a 3x3 neighborhood lookup.
//
// Cell size must be >= the maximum interaction distance between any two
// colliding items so that all potential collisions are found within
// the 3x3 neighborhood.
type SpatialGrid struct {
	bounds      Bounds
	cellSize    float64
	invCellSize float64 // 1 / cellSize (precomputed to avoid division)
	cols        int
	rows        int
	cells       []gridCell
}

// gridCell stores the indices of items that fall within a grid cell.
// The slice is reused between frames (reset to [:0]) to avoid allocations.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a spatial grid covering the given bounds.
// cellSize should be >= the maximum collision distance for the items being inserted.
func NewSpatialGrid(bounds Bounds, cellSize float64) *SpatialGrid {
	g := &SpatialGrid{}
	g.Reset(bounds, cellSize)
	return g
}

// Reset empties the grid and re-fits it to new bounds and cell size.
// Cell memory is kept when the layout does not change.
func (g *SpatialGrid) Reset(bounds Bounds, cellSize float64) {
	if cellSize <= 0 {
		cellSize = 1
	}
	if bounds == g.bounds && cellSize == g.cellSize {
		g.Clear()
		return
	}

	cols := int(math.Ceil(bounds.Width / cellSize))
	rows := int(math.Ceil(bounds.Height / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g.bounds = bounds
	g.cellSize = cellSize
	g.invCellSize = 1.0 / cellSize
	g.cols = cols
	g.rows = rows
	g.cells = make([]gridCell, cols*rows)
}

// Clear removes all items from the grid without deallocating cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds an item (identified by index) at the given position.
func (g *SpatialGrid) Insert(p Point, index int) {
	col, row := g.posToCell(p)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// QueryAround calls fn for each item index in the 3x3 cell neighborhood
// around the given position. Handles wrapping at playfield edges.
// If fn returns true, iteration stops early.
func (g *SpatialGrid) QueryAround(p Point, fn func(index int) bool) {
	col, row := g.posToCell(p)

	var rowBuf, colBuf [3]int
	rows := wrappedNeighbors(row, g.rows, rowBuf[:0])
	cols := wrappedNeighbors(col, g.cols, colBuf[:0])

	for _, r := range rows {
		rowOffset := r * g.cols
		for _, c := range cols {
			for _, itemIdx := range g.cells[rowOffset+c].items {
				if fn(itemIdx) {
					return
				}
			}
		}
	}
}

// wrappedNeighbors appends center-1, center, center+1 wrapped into [0, n),
// skipping duplicates so grids narrower than three cells visit each cell once.
func wrappedNeighbors(center, n int, dst []int) []int {
	for d := -1; d <= 1; d++ {
		v := center + d
		if v < 0 {
			v += n
		} else if v >= n {
			v -= n
		}
		dup := false
		for _, seen := range dst {
			if seen == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	return dst
}

// posToCell converts playfield coordinates to grid cell coordinates.
// Clamps to valid range to handle edge cases with floating point.
func (g *SpatialGrid) posToCell(p Point) (col, row int) {
	col = int(p.X * g.invCellSize)
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(p.Y * g.invCellSize)
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
