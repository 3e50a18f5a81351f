package i

import (
	"context"

	"github.com/google/uuid"
)

// Preferences stores per-player display preferences. Absent values read as
// unset rather than as errors.
type Preferences interface {
	// Theme returns the player's stored theme, with ok false when unset.
	Theme(ctx context.Context, playerID uuid.UUID) (string, bool, error)

	// SetTheme stores the player's theme preference.
	SetTheme(ctx context.Context, playerID uuid.UUID, theme string) error
}
