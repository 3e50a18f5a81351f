package maze

import (
	"math/rand"
)

// CheckpointsPerMaze is the fixed number of border checkpoints each maze
// carries, split across the edges that have a neighboring maze.
const CheckpointsPerMaze = 6

// Config describes where a maze sits in the world grid and which roles it
// plays. WorldRows/WorldCols bound the grid so edge detection knows which
// borders face a neighbor.
type Config struct {
	Size      int      // Grid dimension; normalized to an odd value >= MinSize
	WorldPos  Position // Position of this maze within the world grid
	WorldRows int      // Number of maze rows in the world grid
	WorldCols int      // Number of maze columns in the world grid
	HasExit   bool     // Place the final exit on this maze's border
	IsStart   bool     // Place the player on a random interior path cell
}

// Generate builds a maze for the given world slot. All randomness is drawn
// from rng, so the same seed reproduces the same maze.
func Generate(rng *rand.Rand, cfg Config) *Maze {
	size := normalizeSize(cfg.Size)
	grid := make([][]Cell, size)
	for r := range grid {
		grid[r] = make([]Cell, size)
		for c := range grid[r] {
			grid[r][c] = CellWall
		}
	}
	m := &Maze{Size: size, Grid: grid}

	m.carve(rng)
	spare := m.placeCheckpoints(rng, cfg)
	if cfg.HasExit && len(spare) > 0 {
		exit := spare[rng.Intn(len(spare))]
		m.Set(exit, CellExit)
		m.forceConnect(exit)
	}
	if cfg.IsStart {
		m.Set(m.RandomPathCell(rng), CellPlayer)
	}
	return m
}

// carve runs the recursive backtracker over the odd-indexed interior
// cells. The stack holds the current walk; a cell with no carvable
// neighbor two steps away is popped (backtrack). Termination with an
// empty stack leaves every odd-parity interior cell connected by exactly
// one route.
func (m *Maze) carve(rng *rand.Rand) {
	start := Position{Row: randomOddIndex(rng, m.Size), Col: randomOddIndex(rng, m.Size)}
	m.Set(start, CellPath)
	stack := []Position{start}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		next, ok := m.randomCarveTarget(rng, cur)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}
		between := Position{Row: (cur.Row + next.Row) / 2, Col: (cur.Col + next.Col) / 2}
		m.Set(between, CellPath)
		m.Set(next, CellPath)
		stack = append(stack, next)
	}
}

// randomCarveTarget picks a uniformly random uncarved cell two steps from
// the given position that is still inside the interior.
func (m *Maze) randomCarveTarget(rng *rand.Rand, from Position) (Position, bool) {
	var targets []Position
	for _, dir := range Directions {
		d := Deltas[dir]
		n := Position{Row: from.Row + 2*d.Row, Col: from.Col + 2*d.Col}
		if m.Interior(n) && m.At(n) == CellWall {
			targets = append(targets, n)
		}
	}
	if len(targets) == 0 {
		return Position{}, false
	}
	return targets[rng.Intn(len(targets))], true
}

// placeCheckpoints marks checkpoint cells on every border edge that faces
// a neighboring maze and returns the unused border candidates, which are
// the pool the final exit is drawn from.
//
// The six checkpoints are split as evenly as possible across the existing
// edges; the remainder goes to the earliest edges in processing order
// (right, bottom, left, top). Each edge's candidates are shuffled before
// selection.
func (m *Maze) placeCheckpoints(rng *rand.Rand, cfg Config) []Position {
	edges := m.neighborEdges(cfg)
	if len(edges) == 0 {
		return nil
	}

	per := CheckpointsPerMaze / len(edges)
	rem := CheckpointsPerMaze % len(edges)

	var spare []Position
	for i, candidates := range edges {
		want := per
		if i < rem {
			want++
		}
		if want > len(candidates) {
			want = len(candidates)
		}
		rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})
		for _, p := range candidates[:want] {
			m.Set(p, CellCheckpoint)
			m.forceConnect(p)
		}
		spare = append(spare, candidates[want:]...)
	}
	return spare
}

// neighborEdges returns the odd-indexed border candidates for each edge of
// the maze that has a neighboring maze in the world grid, in processing
// order: right, bottom, left, top.
func (m *Maze) neighborEdges(cfg Config) [][]Position {
	var edges [][]Position
	odds := oddIndexes(m.Size)

	if cfg.WorldPos.Col < cfg.WorldCols-1 {
		right := make([]Position, 0, len(odds))
		for _, r := range odds {
			right = append(right, Position{Row: r, Col: m.Size - 1})
		}
		edges = append(edges, right)
	}
	if cfg.WorldPos.Row < cfg.WorldRows-1 {
		bottom := make([]Position, 0, len(odds))
		for _, c := range odds {
			bottom = append(bottom, Position{Row: m.Size - 1, Col: c})
		}
		edges = append(edges, bottom)
	}
	if cfg.WorldPos.Col > 0 {
		left := make([]Position, 0, len(odds))
		for _, r := range odds {
			left = append(left, Position{Row: r, Col: 0})
		}
		edges = append(edges, left)
	}
	if cfg.WorldPos.Row > 0 {
		top := make([]Position, 0, len(odds))
		for _, c := range odds {
			top = append(top, Position{Row: 0, Col: c})
		}
		edges = append(edges, top)
	}
	return edges
}

// forceConnect guarantees a walkable route from a border cell into the
// carved interior: the single adjacent interior cell becomes path, and so
// do that cell's interior neighbors, regardless of carving outcome.
func (m *Maze) forceConnect(border Position) {
	in := m.InwardOf(border)
	m.Set(in, CellPath)
	for _, d := range Deltas {
		n := in.Add(d)
		if m.Interior(n) {
			m.Set(n, CellPath)
		}
	}
}

// InwardOf returns the interior cell adjacent to a border cell.
func (m *Maze) InwardOf(border Position) Position {
	switch {
	case border.Row == 0:
		return Position{Row: 1, Col: border.Col}
	case border.Row == m.Size-1:
		return Position{Row: m.Size - 2, Col: border.Col}
	case border.Col == 0:
		return Position{Row: border.Row, Col: 1}
	default:
		return Position{Row: border.Row, Col: m.Size - 2}
	}
}

// RandomPathCell returns a uniformly random interior path cell. If the
// maze has none (degenerate sizes) it falls back to the fixed interior
// position (1,1).
func (m *Maze) RandomPathCell(rng *rand.Rand) Position {
	var cells []Position
	for r := 1; r <= m.Size-2; r++ {
		for c := 1; c <= m.Size-2; c++ {
			if m.Grid[r][c] == CellPath {
				cells = append(cells, Position{Row: r, Col: c})
			}
		}
	}
	if len(cells) == 0 {
		return Position{Row: 1, Col: 1}
	}
	return cells[rng.Intn(len(cells))]
}

// normalizeSize clamps and rounds the requested dimension down to an odd
// value the carving grid supports.
func normalizeSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size%2 == 0 {
		return size - 1
	}
	return size
}

// randomOddIndex picks a uniformly random odd index in [1, size-2].
func randomOddIndex(rng *rand.Rand, size int) int {
	return rng.Intn(size/2)*2 + 1
}

// oddIndexes lists the odd indexes in [1, size-2].
func oddIndexes(size int) []int {
	out := make([]int, 0, size/2)
	for i := 1; i <= size-2; i += 2 {
		out = append(out, i)
	}
	return out
}
