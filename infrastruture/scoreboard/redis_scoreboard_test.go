package scoreboard

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T) (*RedisScoreBoard, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	board, err := NewRedisScoreBoard(client, "test")
	require.NoError(t, err)
	return board, srv
}

func TestBest(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()
	key := fmt.Sprintf(bestTimeKeyFmt, "test", playerID)

	t.Run("missing key reads as unset, not as an error", func(t *testing.T) {
		board, _ := newBoard(t)

		seconds, ok, err := board.Best(ctx, playerID)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, seconds)
	})

	t.Run("corrupted stored value reads as unset", func(t *testing.T) {
		board, srv := newBoard(t)
		require.NoError(t, srv.Set(key, "not-a-number"))

		seconds, ok, err := board.Best(ctx, playerID)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, seconds)
	})

	t.Run("redis failure surfaces as an error, never as unset", func(t *testing.T) {
		board, srv := newBoard(t)
		srv.SetError("connection refused")

		_, _, err := board.Best(ctx, playerID)
		assert.Error(t, err)
	})
}

func TestRecordBest(t *testing.T) {
	ctx := context.Background()
	playerID := uuid.New()

	t.Run("first completion is recorded", func(t *testing.T) {
		board, _ := newBoard(t)

		improved, err := board.RecordBest(ctx, playerID, "walker", 120)
		require.NoError(t, err)
		assert.True(t, improved)

		seconds, ok, err := board.Best(ctx, playerID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 120, seconds)
	})

	t.Run("slower completion does not regress the stored best", func(t *testing.T) {
		board, _ := newBoard(t)

		_, err := board.RecordBest(ctx, playerID, "walker", 90)
		require.NoError(t, err)

		improved, err := board.RecordBest(ctx, playerID, "walker", 200)
		require.NoError(t, err)
		assert.False(t, improved)

		seconds, ok, err := board.Best(ctx, playerID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 90, seconds)
	})

	t.Run("faster completion improves the stored best", func(t *testing.T) {
		board, _ := newBoard(t)

		_, err := board.RecordBest(ctx, playerID, "walker", 90)
		require.NoError(t, err)

		improved, err := board.RecordBest(ctx, playerID, "walker", 45)
		require.NoError(t, err)
		assert.True(t, improved)

		seconds, ok, err := board.Best(ctx, playerID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 45, seconds)
	})

	t.Run("completions rank on the leaderboard best first", func(t *testing.T) {
		board, _ := newBoard(t)

		_, err := board.RecordBest(ctx, uuid.New(), "slow", 300)
		require.NoError(t, err)
		_, err = board.RecordBest(ctx, uuid.New(), "fast", 60)
		require.NoError(t, err)

		top, err := board.Top(ctx, 10)
		require.NoError(t, err)
		require.Len(t, top, 2)
		assert.Equal(t, "fast", top[0].Username)
		assert.Equal(t, 60, top[0].Seconds)
		assert.Equal(t, "slow", top[1].Username)
	})
}
