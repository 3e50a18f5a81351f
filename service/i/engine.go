package i

import (
	"github.com/FunsaiSushi/mazewalker/game/engine"
	"github.com/FunsaiSushi/mazewalker/game/maze"
)

// GameEngine is one playable game the session layer drives.
type GameEngine interface {
	Start()
	Restart()
	Tick()
	Status() engine.Status
	Elapsed() int
	ApplyMove(dir maze.Direction) engine.MoveResult
	Snapshot() engine.Snapshot
	Minimap() [][]maze.Cell
}
