package maze

// Cell is the content of a single grid square.
type Cell int

const (
	CellWall Cell = iota
	CellPath
	CellPlayer
	CellExit
	CellCheckpoint
	CellExplored
	CellUnexplored
)

// Walkable reports whether the player may step onto the cell.
func (c Cell) Walkable() bool {
	return c != CellWall
}

// String returns the single-character glyph used by Maze.String.
func (c Cell) String() string {
	switch c {
	case CellWall:
		return "#"
	case CellPath:
		return " "
	case CellPlayer:
		return "P"
	case CellExit:
		return "E"
	case CellCheckpoint:
		return "C"
	case CellExplored:
		return "."
	case CellUnexplored:
		return "?"
	default:
		return "!"
	}
}

// Position is a (row, col) pair. Depending on context it addresses a cell
// within a maze or a maze within the world grid.
type Position struct {
	Row int // Row index
	Col int // Column index
}

// Add returns the position shifted by the given delta.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Direction is one of the four unit moves a player can make.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Deltas maps each direction to its unit row/col offset.
var Deltas = map[Direction]Position{
	Up:    {Row: -1, Col: 0},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Right: {Row: 0, Col: 1},
}

// Directions lists the four directions in a fixed order. Code whose output
// must be reproducible under a fixed seed iterates this instead of Deltas,
// since map iteration order varies per run.
var Directions = [4]Direction{Up, Down, Left, Right}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a lowercase direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	default:
		return 0, false
	}
}
