package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/FunsaiSushi/mazewalker/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// default prefix for redis keys
	defaultPrefix = "mazewalker"

	bestTimeKeyFmt  = "%s:best_time:%s"
	bestTimeLockFmt = "%s:best_time:%s:lock"
	boardKeyFmt     = "%s:leaderboard"
)

// RedisScoreBoard stores each player's fastest completion and ranks them
// in a sorted set. The read-compare-write on a player's best time runs
// under a redsync mutex so concurrent wins cannot regress the stored best.
type RedisScoreBoard struct {
	client *redis.Client
	locker *redsync.Redsync
	prefix string
}

// NewRedisScoreBoard creates a scoreboard on the provided Redis client.
func NewRedisScoreBoard(client *redis.Client, prefix string) (*RedisScoreBoard, error) {
	if client == nil {
		return nil, errors.New("scoreboard requires a redis client")
	}
	if prefix == "" {
		prefix = defaultPrefix
	}

	board := &RedisScoreBoard{
		client: client,
		prefix: prefix,
	}
	pool := goredis.NewPool(board.client)
	board.locker = redsync.New(pool)
	return board, nil
}

// RecordBest stores the completion time if it beats the player's previous
// best and updates the leaderboard entry. Returns true when the stored
// best improved.
func (b *RedisScoreBoard) RecordBest(ctx context.Context, playerID uuid.UUID, username string, seconds int) (bool, error) {
	mutex := b.locker.NewMutex(fmt.Sprintf(bestTimeLockFmt, b.prefix, playerID))
	if err := mutex.Lock(); err != nil {
		return false, err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	best, ok, err := b.best(ctx, playerID)
	if err != nil {
		return false, err
	}
	if ok && best <= seconds {
		return false, nil
	}

	key := fmt.Sprintf(bestTimeKeyFmt, b.prefix, playerID)
	if err := b.client.Set(ctx, key, strconv.Itoa(seconds), 0).Err(); err != nil {
		return false, err
	}

	boardKey := fmt.Sprintf(boardKeyFmt, b.prefix)
	if err := b.client.ZAdd(ctx, boardKey, redis.Z{Score: float64(seconds), Member: username}).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// Best returns the player's fastest completion, with ok false when none is
// recorded. A corrupted stored value reads as unset.
func (b *RedisScoreBoard) Best(ctx context.Context, playerID uuid.UUID) (int, bool, error) {
	return b.best(ctx, playerID)
}

// best reads the stored best time. A missing key or a corrupted value is
// unset; any other Redis error is surfaced so callers do not mistake an
// outage for an empty record.
func (b *RedisScoreBoard) best(ctx context.Context, playerID uuid.UUID) (int, bool, error) {
	value, err := b.client.Get(ctx, fmt.Sprintf(bestTimeKeyFmt, b.prefix, playerID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0, false, nil
	}
	return seconds, true, nil
}

// Top returns up to n fastest completions, best first.
func (b *RedisScoreBoard) Top(ctx context.Context, n int64) ([]i.RankedScore, error) {
	boardKey := fmt.Sprintf(boardKeyFmt, b.prefix)
	rows, err := b.client.ZRangeWithScores(ctx, boardKey, 0, n-1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]i.RankedScore, 0, len(rows))
	for _, row := range rows {
		username, ok := row.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, i.RankedScore{
			Username: username,
			Seconds:  int(row.Score),
		})
	}
	return scores, nil
}
