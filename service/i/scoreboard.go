package i

import (
	"context"

	"github.com/google/uuid"
)

// RankedScore is one leaderboard row: a player's fastest completion.
type RankedScore struct {
	Username string
	Seconds  int
}

// ScoreBoard persists best completion times and ranks them. A missing or
// corrupted stored value reads as "no best time yet", never as an error.
type ScoreBoard interface {
	// RecordBest stores the completion time if it beats the player's
	// previous best. Returns true when the stored best improved.
	RecordBest(ctx context.Context, playerID uuid.UUID, username string, seconds int) (bool, error)

	// Best returns the player's fastest completion, with ok false when the
	// player has none recorded.
	Best(ctx context.Context, playerID uuid.UUID) (int, bool, error)

	// Top returns up to n fastest completions, best first.
	Top(ctx context.Context, n int64) ([]RankedScore, error)
}
