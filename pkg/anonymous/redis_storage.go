package anonymous

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStorage implements authkit.Storage on top of a Redis client. Flags
// are stored as plain string values without expiration; the toolkit treats
// them as durable until removed.
type RedisStorage struct {
	client redis.UniversalClient
}

// NewRedisStorage wraps an already-connected client. The storage does not
// own the client and never closes it.
func NewRedisStorage(client redis.UniversalClient) *RedisStorage {
	return &RedisStorage{client: client}
}

// Get returns the value under key, mapping redis.Nil to ("", nil) so that an
// unknown key reads as unset rather than as an error.
func (r *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// Set stores value under key.
func (r *RedisStorage) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Remove deletes key. Deleting an unknown key is a no-op.
func (r *RedisStorage) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
