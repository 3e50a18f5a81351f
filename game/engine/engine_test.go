package engine

import (
	"math/rand"
	"testing"

	"github.com/FunsaiSushi/mazewalker/game/maze"
	"github.com/FunsaiSushi/mazewalker/game/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunning(seed int64) *Engine {
	e := New(rand.New(rand.NewSource(seed)))
	e.Start()
	return e
}

// placePlayer force-moves the player marker to p within the current maze.
func placePlayer(e *Engine, p maze.Position) {
	m := e.world.At(e.mazePos).Maze
	m.ClearPlayer()
	m.Set(p, maze.CellPlayer)
	e.playerPos = p
}

// directionTo resolves the unit direction from a to an adjacent b.
func directionTo(t *testing.T, a, b maze.Position) maze.Direction {
	t.Helper()
	for d, delta := range maze.Deltas {
		if a.Add(delta) == b {
			return d
		}
	}
	t.Fatalf("positions %v and %v are not adjacent", a, b)
	return 0
}

func findCell(m *maze.Maze, want maze.Cell) (maze.Position, bool) {
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			if m.Grid[r][c] == want {
				return maze.Position{Row: r, Col: c}, true
			}
		}
	}
	return maze.Position{}, false
}

func TestStatusMachine(t *testing.T) {
	e := New(rand.New(rand.NewSource(1)))
	assert.Equal(t, StatusNotStarted, e.Status())

	t.Run("moves are rejected before start", func(t *testing.T) {
		before := e.Snapshot()
		res := e.ApplyMove(maze.Up)
		assert.False(t, res.Moved)
		assert.True(t, before.World.Equal(e.world))
	})

	t.Run("start transitions to running once", func(t *testing.T) {
		e.Start()
		assert.Equal(t, StatusRunning, e.Status())
		e.Start()
		assert.Equal(t, StatusRunning, e.Status())
	})

	t.Run("tick counts only while running", func(t *testing.T) {
		e.Tick()
		e.Tick()
		assert.Equal(t, 2, e.Elapsed())
		e.status = StatusWon
		e.Tick()
		assert.Equal(t, 2, e.Elapsed())
	})
}

func TestApplyMoveRejections(t *testing.T) {
	t.Run("a wall destination changes nothing", func(t *testing.T) {
		// Scan a handful of games for a player with an adjacent wall.
		for seed := int64(1); seed <= 10; seed++ {
			e := newRunning(seed)
			var wallDir maze.Direction
			found := false
			m := e.world.At(e.mazePos).Maze
			for d, delta := range maze.Deltas {
				if m.At(e.playerPos.Add(delta)) == maze.CellWall {
					wallDir, found = d, true
					break
				}
			}
			if !found {
				continue
			}

			before := e.Snapshot()
			res := e.ApplyMove(wallDir)
			assert.False(t, res.Moved)
			assert.Equal(t, before.MazePos, e.mazePos)
			assert.Equal(t, before.PlayerPos, e.playerPos)
			require.True(t, before.World.Equal(e.world), "seed %d", seed)
			return
		}
		t.Fatal("no game with an adjacent wall found")
	})

	t.Run("bounds check fires before the wall check", func(t *testing.T) {
		e := newRunning(1)
		placePlayer(e, maze.Position{Row: 0, Col: 1})

		before := e.Snapshot()
		res := e.ApplyMove(maze.Up)
		assert.False(t, res.Moved)
		assert.True(t, before.World.Equal(e.world))
		assert.Equal(t, maze.Position{Row: 0, Col: 1}, e.playerPos)
	})
}

func TestApplyMoveWalk(t *testing.T) {
	e := newRunning(2)
	m := e.world.At(e.mazePos).Maze

	var dir maze.Direction
	var dest maze.Position
	found := false
	for d, delta := range maze.Deltas {
		n := e.playerPos.Add(delta)
		if m.At(n) == maze.CellPath {
			dir, dest, found = d, n, true
			break
		}
	}
	require.True(t, found, "player should have at least one open neighbor")

	src := e.playerPos
	res := e.ApplyMove(dir)
	assert.True(t, res.Moved)
	assert.False(t, res.Won)
	assert.False(t, res.Transitioned)
	assert.Equal(t, maze.CellExplored, m.At(src), "vacated cell stays explored")
	assert.Equal(t, maze.CellPlayer, m.At(dest))
	assert.Equal(t, dest, e.playerPos)
}

func TestApplyMoveCheckpoint(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		e := newRunning(seed)
		srcMaze := e.mazePos
		m := e.world.At(srcMaze).Maze

		cp, ok := findCell(m, maze.CellCheckpoint)
		require.True(t, ok)
		inward := m.InwardOf(cp)
		placePlayer(e, inward)

		res := e.ApplyMove(directionTo(t, inward, cp))
		require.True(t, res.Moved, "seed %d", seed)
		assert.True(t, res.Transitioned)
		assert.NotEqual(t, srcMaze, e.mazePos)
		assert.True(t, e.world.InBounds(e.mazePos))

		// The player lands on an interior cell of the new maze that was a
		// plain path cell, now marked as the player.
		dst := e.world.At(e.mazePos)
		assert.True(t, dst.Explored)
		assert.True(t, dst.Maze.Interior(e.playerPos))
		assert.Equal(t, maze.CellPlayer, dst.Maze.At(e.playerPos))

		// The vacated maze keeps its explored flag, the checkpoint cell
		// survives, and the old player cell reads explored.
		assert.True(t, e.world.At(srcMaze).Explored)
		assert.Equal(t, maze.CellCheckpoint, m.At(cp))
		assert.Equal(t, maze.CellExplored, m.At(inward))

		// Exactly one player marker exists across the whole world.
		players := 0
		for r := 0; r < world.Rows; r++ {
			for c := 0; c < world.Cols; c++ {
				if _, ok := e.world.Grid[r][c].Maze.FindPlayer(); ok {
					players++
				}
			}
		}
		assert.Equal(t, 1, players, "seed %d", seed)
	}
}

func TestApplyMoveExit(t *testing.T) {
	e := newRunning(3)

	exitSlot, ok := e.world.FinalExitPos()
	require.True(t, ok)
	e.mazePos = exitSlot
	m := e.world.At(exitSlot).Maze

	exit, ok := findCell(m, maze.CellExit)
	require.True(t, ok)
	inward := m.InwardOf(exit)
	placePlayer(e, inward)

	res := e.ApplyMove(directionTo(t, inward, exit))
	require.True(t, res.Moved)
	assert.True(t, res.Won)
	assert.False(t, res.Transitioned, "winning never chains into a transition")
	assert.Equal(t, StatusWon, e.Status())
	assert.Equal(t, maze.CellPlayer, m.At(exit))

	t.Run("no moves are accepted after winning", func(t *testing.T) {
		before := e.Snapshot()
		next := e.ApplyMove(maze.Down)
		assert.False(t, next.Moved)
		assert.True(t, before.World.Equal(e.world))
	})
}

func TestRestart(t *testing.T) {
	e := newRunning(4)
	e.Tick()
	e.status = StatusWon

	e.Restart()
	assert.Equal(t, StatusNotStarted, e.Status())
	assert.Equal(t, 0, e.Elapsed())
	assert.Equal(t, world.StartPos, e.mazePos)

	players := 0
	for r := 0; r < world.Rows; r++ {
		for c := 0; c < world.Cols; c++ {
			if _, ok := e.world.Grid[r][c].Maze.FindPlayer(); ok {
				players++
			}
		}
	}
	assert.Equal(t, 1, players)
	assert.Equal(t, maze.CellPlayer, e.world.At(world.StartPos).Maze.At(e.playerPos))
}

func TestMinimap(t *testing.T) {
	e := newRunning(5)
	grid := e.Minimap()

	require.Len(t, grid, world.Rows)
	for r := range grid {
		require.Len(t, grid[r], world.Cols)
		for c := range grid[r] {
			pos := maze.Position{Row: r, Col: c}
			if pos == world.StartPos {
				assert.Equal(t, maze.CellPlayer, grid[r][c])
			} else {
				assert.Equal(t, maze.CellUnexplored, grid[r][c])
			}
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newRunning(6)
	snap := e.Snapshot()
	snap.World.At(world.StartPos).Maze.Set(maze.Position{Row: 1, Col: 1}, maze.CellExplored)
	snap.World.At(world.StartPos).Explored = false

	assert.True(t, e.world.At(world.StartPos).Explored, "snapshot mutation must not reach the engine")
}
