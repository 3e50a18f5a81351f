package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// soloConfig generates a maze with no world neighbors: no checkpoints, no
// exit, pure carving output.
func soloConfig() Config {
	return Config{Size: DefaultSize, WorldPos: Position{0, 0}, WorldRows: 1, WorldCols: 1}
}

func collectCells(m *Maze, want Cell) []Position {
	var out []Position
	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			if m.Grid[r][c] == want {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// reachableFrom counts walkable cells reachable from start through
// 4-directional adjacency.
func reachableFrom(m *Maze, start Position) int {
	seen := map[Position]struct{}{start: {}}
	stack := []Position{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range Deltas {
			n := cur.Add(d)
			if !m.InBounds(n) || !m.At(n).Walkable() {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			stack = append(stack, n)
		}
	}
	return len(seen)
}

func TestGenerateCarving(t *testing.T) {
	t.Run("all walkable cells form a single connected component", func(t *testing.T) {
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			m := Generate(rng, Config{Size: DefaultSize, WorldPos: Position{2, 2}, WorldRows: 5, WorldCols: 5})

			var walkable []Position
			for r := 0; r < m.Size; r++ {
				for c := 0; c < m.Size; c++ {
					if m.Grid[r][c].Walkable() {
						walkable = append(walkable, Position{Row: r, Col: c})
					}
				}
			}
			require.NotEmpty(t, walkable)
			assert.Equal(t, len(walkable), reachableFrom(m, walkable[0]), "seed %d", seed)
		}
	})

	t.Run("carving visits every odd-indexed interior cell", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		m := Generate(rng, soloConfig())

		for r := 1; r <= m.Size-2; r += 2 {
			for c := 1; c <= m.Size-2; c += 2 {
				assert.Equal(t, CellPath, m.Grid[r][c], "cell (%d,%d)", r, c)
			}
		}
	})

	t.Run("carving is a spanning tree over the odd grid", func(t *testing.T) {
		// Without neighbors nothing is force-connected, so the carved
		// connectors must number exactly V-1 for V odd-grid vertices.
		for seed := int64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewSource(seed))
			m := Generate(rng, soloConfig())

			vertices, connectors := 0, 0
			for r := 1; r <= m.Size-2; r++ {
				for c := 1; c <= m.Size-2; c++ {
					if m.Grid[r][c] != CellPath {
						continue
					}
					if r%2 == 1 && c%2 == 1 {
						vertices++
					} else {
						connectors++
					}
				}
			}
			assert.Equal(t, vertices-1, connectors, "seed %d", seed)
		}
	})

	t.Run("border stays solid wall without neighbors", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		m := Generate(rng, soloConfig())

		for i := 0; i < m.Size; i++ {
			assert.Equal(t, CellWall, m.Grid[0][i])
			assert.Equal(t, CellWall, m.Grid[m.Size-1][i])
			assert.Equal(t, CellWall, m.Grid[i][0])
			assert.Equal(t, CellWall, m.Grid[i][m.Size-1])
		}
	})

	t.Run("same seed reproduces the same maze", func(t *testing.T) {
		cfg := Config{Size: DefaultSize, WorldPos: Position{1, 3}, WorldRows: 5, WorldCols: 5, HasExit: true}
		for seed := int64(1); seed <= 25; seed++ {
			a := Generate(rand.New(rand.NewSource(seed)), cfg)
			b := Generate(rand.New(rand.NewSource(seed)), cfg)
			assert.True(t, a.Equal(b), "seed %d", seed)
		}
	})
}

func TestGenerateCheckpoints(t *testing.T) {
	edgeOf := func(m *Maze, p Position) string {
		switch {
		case p.Col == m.Size-1:
			return "right"
		case p.Row == m.Size-1:
			return "bottom"
		case p.Col == 0:
			return "left"
		case p.Row == 0:
			return "top"
		default:
			return "interior"
		}
	}

	t.Run("corner maze places all six on right and bottom", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			rng := rand.New(rand.NewSource(seed))
			m := Generate(rng, Config{Size: DefaultSize, WorldPos: Position{0, 0}, WorldRows: 5, WorldCols: 5})

			counts := map[string]int{}
			for _, p := range collectCells(m, CellCheckpoint) {
				counts[edgeOf(m, p)]++
			}
			assert.Equal(t, map[string]int{"right": 3, "bottom": 3}, counts, "seed %d", seed)
		}
	})

	t.Run("center maze splits six across four edges with remainder first", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		m := Generate(rng, Config{Size: DefaultSize, WorldPos: Position{2, 2}, WorldRows: 5, WorldCols: 5})

		counts := map[string]int{}
		for _, p := range collectCells(m, CellCheckpoint) {
			counts[edgeOf(m, p)]++
		}
		assert.Equal(t, map[string]int{"right": 2, "bottom": 2, "left": 1, "top": 1}, counts)
	})

	t.Run("checkpoints sit on odd border indexes and are connected inward", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		m := Generate(rng, Config{Size: DefaultSize, WorldPos: Position{1, 1}, WorldRows: 5, WorldCols: 5})

		cps := collectCells(m, CellCheckpoint)
		require.Len(t, cps, CheckpointsPerMaze)
		for _, p := range cps {
			assert.True(t, m.OnBorder(p))
			if p.Row == 0 || p.Row == m.Size-1 {
				assert.Equal(t, 1, p.Col%2)
			} else {
				assert.Equal(t, 1, p.Row%2)
			}
			assert.Equal(t, CellPath, m.At(m.InwardOf(p)), "checkpoint %v has no inward path", p)
		}
	})
}

func TestGenerateExitAndStart(t *testing.T) {
	t.Run("final exit maze carries exactly one border exit", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			rng := rand.New(rand.NewSource(seed))
			m := Generate(rng, Config{Size: DefaultSize, WorldPos: Position{0, 2}, WorldRows: 5, WorldCols: 5, HasExit: true})

			exits := collectCells(m, CellExit)
			require.Len(t, exits, 1, "seed %d", seed)
			assert.True(t, m.OnBorder(exits[0]))
			assert.Equal(t, CellPath, m.At(m.InwardOf(exits[0])))
		}
	})

	t.Run("start maze carries exactly one interior player", func(t *testing.T) {
		rng := rand.New(rand.NewSource(4))
		m := Generate(rng, Config{Size: DefaultSize, WorldPos: Position{0, 1}, WorldRows: 5, WorldCols: 5, IsStart: true})

		players := collectCells(m, CellPlayer)
		require.Len(t, players, 1)
		assert.True(t, m.Interior(players[0]))
	})

	t.Run("degenerate sizes are normalized", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		assert.Equal(t, MinSize, Generate(rng, Config{Size: 2, WorldRows: 1, WorldCols: 1}).Size)
		assert.Equal(t, 9, Generate(rng, Config{Size: 10, WorldRows: 1, WorldCols: 1}).Size)
	})
}

func TestRandomPathCell(t *testing.T) {
	t.Run("always lands on an interior path cell", func(t *testing.T) {
		rng := rand.New(rand.NewSource(8))
		m := Generate(rng, Config{Size: DefaultSize, WorldPos: Position{3, 3}, WorldRows: 5, WorldCols: 5})
		for i := 0; i < 50; i++ {
			p := m.RandomPathCell(rng)
			assert.True(t, m.Interior(p))
			assert.Equal(t, CellPath, m.At(p))
		}
	})

	t.Run("falls back to the fixed position when no path exists", func(t *testing.T) {
		grid := make([][]Cell, MinSize)
		for r := range grid {
			grid[r] = make([]Cell, MinSize)
		}
		m := &Maze{Size: MinSize, Grid: grid} // all walls
		for r := range m.Grid {
			for c := range m.Grid[r] {
				m.Grid[r][c] = CellWall
			}
		}
		assert.Equal(t, Position{Row: 1, Col: 1}, m.RandomPathCell(rand.New(rand.NewSource(1))))
	})
}
