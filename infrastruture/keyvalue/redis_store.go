package keyvalue

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a thin key-value adapter over redis. Keys are namespaced
// with a prefix so multiple deployments can share an instance.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a RedisStore with the provided client and prefix.
func NewRedisStore(client *redis.Client, prefix string) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis store requires a client")
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

// Get returns the stored value and whether the key was present. A missing
// key is not an error.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+":"+key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores the value under the key, overwriting any previous value.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.prefix+":"+key, value, 0).Err()
}
