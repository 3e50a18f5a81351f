package i

import (
	"context"
)

// KeyValueStore is the narrow persistence capability the game needs for
// scalar preferences: get a key that may be absent, set a key.
type KeyValueStore interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value under the key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}
