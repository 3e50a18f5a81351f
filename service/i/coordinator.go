package i

import (
	"context"

	"github.com/FunsaiSushi/mazewalker/game/engine"
	"github.com/FunsaiSushi/mazewalker/game/maze"
	"github.com/google/uuid"
)

// GameCoordinator manages one traversal game per player and applies move
// intents to it.
type GameCoordinator interface {
	// StartGame creates a session for the player if none exists and puts
	// the game in the running state.
	StartGame(ctx context.Context, playerID uuid.UUID) (engine.Snapshot, error)

	// Move applies a directional move intent to the player's game. A
	// winning move records the completion time before returning.
	Move(ctx context.Context, playerID uuid.UUID, dir maze.Direction) (engine.MoveResult, engine.Snapshot, error)

	// Restart rebuilds the player's world and resets the timer.
	Restart(ctx context.Context, playerID uuid.UUID) (engine.Snapshot, error)

	// State returns a read-only snapshot of the player's game.
	State(ctx context.Context, playerID uuid.UUID) (engine.Snapshot, error)

	// Minimap returns the 5x5 world overview for the player's game.
	Minimap(ctx context.Context, playerID uuid.UUID) ([][]maze.Cell, error)
}
