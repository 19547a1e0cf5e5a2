// internal/component/boss_grid.go
package component

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Cell is one armor block of a boss.
type Cell struct {
	HP    int
	Color string
	Core  bool
}

// BossGrid is a destructible armor grid centred on the boss origin.
// Cells[row][col]; nil is an empty slot.
type BossGrid struct {
	Rows     int
	Cols     int
	CellSize float64
	Cells    [][]*Cell
}

// Clone deep-copies the grid so archetype templates are never mutated.
func (g *BossGrid) Clone() *BossGrid {
	if g == nil {
		return nil
	}
	c := &BossGrid{Rows: g.Rows, Cols: g.Cols, CellSize: g.CellSize, Cells: make([][]*Cell, len(g.Cells))}
	for r, row := range g.Cells {
		c.Cells[r] = make([]*Cell, len(row))
		for col, cell := range row {
			if cell != nil {
				cp := *cell
				c.Cells[r][col] = &cp
			}
		}
	}
	return c
}

// CellAt maps a point in boss-local space to a grid address.
// ok is false outside [0,Rows)×[0,Cols).
func (g *BossGrid) CellAt(local f64.Vec2) (row, col int, ok bool) {
	if g == nil || g.CellSize <= 0 {
		return 0, 0, false
	}
	gx := local[0] + float64(g.Cols)*g.CellSize/2
	gy := local[1] + float64(g.Rows)*g.CellSize/2
	col = int(math.Floor(gx / g.CellSize))
	row = int(math.Floor(gy / g.CellSize))
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// Get returns the cell at (row, col), nil if empty or out of range.
func (g *BossGrid) Get(row, col int) *Cell {
	if row < 0 || row >= len(g.Cells) || col < 0 || col >= len(g.Cells[row]) {
		return nil
	}
	return g.Cells[row][col]
}

// Clear empties a slot.
func (g *BossGrid) Clear(row, col int) {
	if g.Get(row, col) != nil {
		g.Cells[row][col] = nil
	}
}

// Remaining counts occupied cells.
func (g *BossGrid) Remaining() int {
	n := 0
	for _, row := range g.Cells {
		for _, c := range row {
			if c != nil {
				n++
			}
		}
	}
	return n
}
