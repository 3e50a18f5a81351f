/*
Package maze provides generation and inspection of the square grid mazes
the game world is assembled from.

A Maze is a size×size grid of typed cells. Generation uses randomized
depth-first carving (the recursive backtracker), producing a perfect maze:
the carved passages form a single spanning tree over the odd-indexed
interior cells, so exactly one route exists between any two path cells.
Border cells stay walls except for checkpoints and the final exit, which
are force-connected to the carved interior.
*/
package maze

import (
	"strings"
)

// DefaultSize is the grid dimension used by the game. Sizes must be odd
// and at least MinSize for the carving grid to be well formed.
const (
	DefaultSize = 11
	MinSize     = 5
)

// Maze is a square grid of cells. The zero value is not usable; build one
// with Generate.
type Maze struct {
	Size int      // Grid dimension (odd, >= MinSize)
	Grid [][]Cell // Grid[row][col]
}

// InBounds reports whether p addresses a cell of the maze.
func (m *Maze) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < m.Size && p.Col >= 0 && p.Col < m.Size
}

// Interior reports whether p is strictly inside the border.
func (m *Maze) Interior(p Position) bool {
	return p.Row >= 1 && p.Row <= m.Size-2 && p.Col >= 1 && p.Col <= m.Size-2
}

// At returns the cell at p. Out-of-bounds positions read as walls so that
// callers can probe neighbors without their own bounds checks.
func (m *Maze) At(p Position) Cell {
	if !m.InBounds(p) {
		return CellWall
	}
	return m.Grid[p.Row][p.Col]
}

// Set writes the cell at p. Out-of-bounds writes are dropped.
func (m *Maze) Set(p Position, c Cell) {
	if !m.InBounds(p) {
		return
	}
	m.Grid[p.Row][p.Col] = c
}

// OnBorder reports whether p lies on the outer border of the maze.
func (m *Maze) OnBorder(p Position) bool {
	return m.InBounds(p) && !m.Interior(p)
}

// FindPlayer returns the position of the player marker, if present.
func (m *Maze) FindPlayer() (Position, bool) {
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			if m.Grid[r][c] == CellPlayer {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// ClearPlayer rewrites any player marker back to a plain path cell.
func (m *Maze) ClearPlayer() {
	if p, ok := m.FindPlayer(); ok {
		m.Grid[p.Row][p.Col] = CellPath
	}
}

// Clone returns a deep copy of the maze.
func (m *Maze) Clone() *Maze {
	grid := make([][]Cell, m.Size)
	for r := range grid {
		grid[r] = make([]Cell, m.Size)
		copy(grid[r], m.Grid[r])
	}
	return &Maze{Size: m.Size, Grid: grid}
}

// Equal reports whether two mazes have identical dimensions and cells.
func (m *Maze) Equal(o *Maze) bool {
	if m.Size != o.Size {
		return false
	}
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			if m.Grid[r][c] != o.Grid[r][c] {
				return false
			}
		}
	}
	return true
}

// String provides a textual representation of the maze, one glyph per cell.
func (m *Maze) String() string {
	var b strings.Builder
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			b.WriteString(m.Grid[r][c].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
