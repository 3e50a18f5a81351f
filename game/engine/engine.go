/*
Package engine drives a single game: it owns the world, the player's
position, the status machine, and the elapsed-seconds counter, and applies
move intents one at a time.

The engine is deliberately single-threaded; callers that share an engine
across goroutines (the session layer does) serialize access themselves.
*/
package engine

import (
	"math/rand"

	"github.com/FunsaiSushi/mazewalker/game/maze"
	"github.com/FunsaiSushi/mazewalker/game/world"
)

// Status is the coarse game state.
type Status int

const (
	StatusNotStarted Status = iota
	StatusRunning
	StatusWon
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not-started"
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	default:
		return "unknown"
	}
}

// MoveResult reports the outcome of a single move intent. A rejected move
// (out of bounds or into a wall) leaves the world untouched and comes back
// with Moved false.
type MoveResult struct {
	Moved        bool          // The move changed state
	Won          bool          // The move reached the final exit
	Transitioned bool          // The move crossed a checkpoint into another maze
	MazePos      maze.Position // Current maze within the world grid
	PlayerPos    maze.Position // Player cell within the current maze
}

// Snapshot is a read-only copy of the full game state, taken after every
// mutation for display.
type Snapshot struct {
	World     *world.World
	MazePos   maze.Position
	PlayerPos maze.Position
	Status    Status
	Elapsed   int
}

// Engine holds one game. Build it with New; Restart rebuilds the world in
// place.
type Engine struct {
	rng       *rand.Rand
	world     *world.World
	mazePos   maze.Position
	playerPos maze.Position
	status    Status
	elapsed   int
}

// New creates an engine with a freshly built world in the not-started
// state. All randomness, including later checkpoint transitions, is drawn
// from rng so a seed fully determines a game.
func New(rng *rand.Rand) *Engine {
	e := &Engine{rng: rng}
	e.rebuild()
	return e
}

func (e *Engine) rebuild() {
	e.world = world.Build(e.rng)
	e.mazePos = world.StartPos
	start := e.world.At(world.StartPos).Maze
	pos, ok := start.FindPlayer()
	if !ok {
		pos = maze.Position{Row: 1, Col: 1}
		start.Set(pos, maze.CellPlayer)
	}
	e.playerPos = pos
	e.status = StatusNotStarted
	e.elapsed = 0
}

// Start moves the game from not-started to running. It has no effect in
// any other state.
func (e *Engine) Start() {
	if e.status == StatusNotStarted {
		e.status = StatusRunning
	}
}

// Restart discards the current world and builds a fresh one, resetting the
// elapsed counter and returning to not-started.
func (e *Engine) Restart() {
	e.rebuild()
}

// Tick advances the elapsed-seconds counter by one. The engine does not
// own a clock; whoever runs the game drives Tick once per second while it
// is running.
func (e *Engine) Tick() {
	if e.status == StatusRunning {
		e.elapsed++
	}
}

// Status returns the current game status.
func (e *Engine) Status() Status {
	return e.status
}

// Elapsed returns the number of ticks counted while running.
func (e *Engine) Elapsed() int {
	return e.elapsed
}

// ApplyMove applies one directional move intent. The bounds check fires
// before the wall check; a rejected move changes nothing. Stepping onto a
// checkpoint transitions the player into the adjacent maze; stepping onto
// the final exit wins the game.
func (e *Engine) ApplyMove(dir maze.Direction) MoveResult {
	if e.status != StatusRunning {
		return e.rejected()
	}

	cur := e.world.At(e.mazePos).Maze
	dest := e.playerPos.Add(maze.Deltas[dir])
	if !cur.InBounds(dest) {
		return e.rejected()
	}
	destCell := cur.At(dest)
	if destCell == maze.CellWall {
		return e.rejected()
	}

	// The vacated cell stays explored, including across maze transitions.
	cur.Set(e.playerPos, maze.CellExplored)

	switch destCell {
	case maze.CellExit:
		cur.Set(dest, maze.CellPlayer)
		e.playerPos = dest
		e.status = StatusWon
		return MoveResult{Moved: true, Won: true, MazePos: e.mazePos, PlayerPos: e.playerPos}

	case maze.CellCheckpoint:
		target := e.adjacentMazePos(dest, cur.Size)
		slot := e.world.At(target)
		slot.Maze.ClearPlayer()
		spawn := slot.Maze.RandomPathCell(e.rng)
		slot.Maze.Set(spawn, maze.CellPlayer)
		slot.Explored = true
		e.mazePos = target
		e.playerPos = spawn
		return MoveResult{Moved: true, Transitioned: true, MazePos: e.mazePos, PlayerPos: e.playerPos}

	default:
		cur.Set(dest, maze.CellPlayer)
		e.playerPos = dest
		return MoveResult{Moved: true, MazePos: e.mazePos, PlayerPos: e.playerPos}
	}
}

// adjacentMazePos maps the edge a checkpoint sits on to the neighboring
// maze coordinate, clamped to the world grid. Placement rules keep
// checkpoints off edges without neighbors, so the clamp is a safeguard,
// not a code path games reach.
func (e *Engine) adjacentMazePos(checkpoint maze.Position, size int) maze.Position {
	target := e.mazePos
	switch {
	case checkpoint.Row == 0:
		target.Row--
	case checkpoint.Row == size-1:
		target.Row++
	case checkpoint.Col == 0:
		target.Col--
	default:
		target.Col++
	}
	target.Row = clamp(target.Row, 0, world.Rows-1)
	target.Col = clamp(target.Col, 0, world.Cols-1)
	return target
}

func (e *Engine) rejected() MoveResult {
	return MoveResult{MazePos: e.mazePos, PlayerPos: e.playerPos}
}

// Snapshot returns a deep copy of the current state for display.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		World:     e.world.Clone(),
		MazePos:   e.mazePos,
		PlayerPos: e.playerPos,
		Status:    e.status,
		Elapsed:   e.elapsed,
	}
}

// Minimap renders the world grid one cell per maze: the current slot is
// the player, explored slots are explored (the exit slot shows as the exit
// once discovered), everything else is unexplored.
func (e *Engine) Minimap() [][]maze.Cell {
	grid := make([][]maze.Cell, world.Rows)
	for r := 0; r < world.Rows; r++ {
		grid[r] = make([]maze.Cell, world.Cols)
		for c := 0; c < world.Cols; c++ {
			pos := maze.Position{Row: r, Col: c}
			slot := e.world.At(pos)
			switch {
			case pos == e.mazePos:
				grid[r][c] = maze.CellPlayer
			case slot.Explored && slot.HasFinalExit:
				grid[r][c] = maze.CellExit
			case slot.Explored:
				grid[r][c] = maze.CellExplored
			default:
				grid[r][c] = maze.CellUnexplored
			}
		}
	}
	return grid
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
