/*
Package world assembles generated mazes into the connected 5×5 grid the
game is played on. Adjacent slots are implicitly connected through the
border checkpoints their mazes carry; exactly one slot holds the final
exit.
*/
package world

import (
	"math/rand"

	"github.com/FunsaiSushi/mazewalker/game/maze"
)

// World grid dimensions.
const (
	Rows = 5
	Cols = 5
)

// StartPos is the fixed slot the player begins in.
var StartPos = maze.Position{Row: 0, Col: 1}

// exitRedirectPos receives the final exit when the uniform draw lands on
// the start slot, so the goal never coincides with the starting maze.
var exitRedirectPos = maze.Position{Row: 0, Col: 2}

// Slot wraps one maze of the world grid with its bookkeeping flags.
type Slot struct {
	Maze         *maze.Maze
	HasFinalExit bool // Exactly one slot per world carries the final exit
	Explored     bool // Flips true the first time the player enters; never back
}

// World is the fixed grid of maze slots. It is the single root of truth
// for the game board; the traversal engine mutates it in place.
type World struct {
	Grid [Rows][Cols]*Slot
}

// Build generates a fresh world: one maze per slot, a uniformly random
// final-exit slot (redirected off the start slot), and the start slot
// marked explored. All randomness is drawn from rng.
func Build(rng *rand.Rand) *World {
	exitPos := maze.Position{Row: rng.Intn(Rows), Col: rng.Intn(Cols)}
	if exitPos == StartPos {
		exitPos = exitRedirectPos
	}

	w := &World{}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pos := maze.Position{Row: r, Col: c}
			w.Grid[r][c] = &Slot{
				Maze: maze.Generate(rng, maze.Config{
					Size:      maze.DefaultSize,
					WorldPos:  pos,
					WorldRows: Rows,
					WorldCols: Cols,
					HasExit:   pos == exitPos,
					IsStart:   pos == StartPos,
				}),
				HasFinalExit: pos == exitPos,
				Explored:     pos == StartPos,
			}
		}
	}
	return w
}

// InBounds reports whether p addresses a slot of the world grid.
func (w *World) InBounds(p maze.Position) bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// At returns the slot at p, or nil when p is out of bounds.
func (w *World) At(p maze.Position) *Slot {
	if !w.InBounds(p) {
		return nil
	}
	return w.Grid[p.Row][p.Col]
}

// FinalExitPos returns the position of the slot holding the final exit.
func (w *World) FinalExitPos() (maze.Position, bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if w.Grid[r][c].HasFinalExit {
				return maze.Position{Row: r, Col: c}, true
			}
		}
	}
	return maze.Position{}, false
}

// Clone returns a deep copy of the world, useful for before/after
// comparisons.
func (w *World) Clone() *World {
	out := &World{}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			s := w.Grid[r][c]
			out.Grid[r][c] = &Slot{
				Maze:         s.Maze.Clone(),
				HasFinalExit: s.HasFinalExit,
				Explored:     s.Explored,
			}
		}
	}
	return out
}

// Equal reports whether two worlds are cell-for-cell identical.
func (w *World) Equal(o *World) bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			a, b := w.Grid[r][c], o.Grid[r][c]
			if a.HasFinalExit != b.HasFinalExit || a.Explored != b.Explored || !a.Maze.Equal(b.Maze) {
				return false
			}
		}
	}
	return true
}
