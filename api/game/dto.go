// Package gameapi exposes the traversal game over HTTP: move intents in,
// read-only state snapshots out.
package gameapi

import (
	"strings"

	"github.com/FunsaiSushi/mazewalker/game/engine"
	"github.com/FunsaiSushi/mazewalker/game/maze"
)

// MoveRequest carries one directional move intent.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// ThemeRequest sets the player's display theme.
type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// PositionResponse is a (row, col) pair on the wire.
type PositionResponse struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// StateResponse is the read-only snapshot of a game. Maze is the current
// maze rendered one glyph per cell; Minimap is the 5x5 world overview.
type StateResponse struct {
	Status    string           `json:"status"`
	Elapsed   int              `json:"elapsed_seconds"`
	MazePos   PositionResponse `json:"maze_pos"`
	PlayerPos PositionResponse `json:"player_pos"`
	Maze      []string         `json:"maze"`
	Minimap   []string         `json:"minimap"`
}

// MoveResponse reports the outcome of a move plus the resulting state.
type MoveResponse struct {
	Moved        bool          `json:"moved"`
	Won          bool          `json:"won"`
	Transitioned bool          `json:"transitioned"`
	State        StateResponse `json:"state"`
}

// ThemeResponse returns the stored theme; Set is false when the player has
// no preference recorded.
type ThemeResponse struct {
	Theme string `json:"theme"`
	Set   bool   `json:"set"`
}

// BestTimeResponse returns the player's fastest completion.
type BestTimeResponse struct {
	Seconds int  `json:"seconds"`
	Set     bool `json:"set"`
}

// LeaderboardRow is one ranked completion.
type LeaderboardRow struct {
	Username string `json:"username"`
	Seconds  int    `json:"seconds"`
}

func toPosition(p maze.Position) PositionResponse {
	return PositionResponse{Row: p.Row, Col: p.Col}
}

func toState(snap engine.Snapshot, minimap [][]maze.Cell) StateResponse {
	cur := snap.World.At(snap.MazePos)
	return StateResponse{
		Status:    snap.Status.String(),
		Elapsed:   snap.Elapsed,
		MazePos:   toPosition(snap.MazePos),
		PlayerPos: toPosition(snap.PlayerPos),
		Maze:      strings.Split(strings.TrimRight(cur.Maze.String(), "\n"), "\n"),
		Minimap:   renderMinimap(minimap),
	}
}

func renderMinimap(grid [][]maze.Cell) []string {
	rows := make([]string, 0, len(grid))
	for _, cells := range grid {
		var b strings.Builder
		for _, c := range cells {
			b.WriteString(c.String())
		}
		rows = append(rows, b.String())
	}
	return rows
}
