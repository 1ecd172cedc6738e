package cart

import (
	"context"
	"errors"
	"time"

	"github.com/smontoya/kickstore-backend/pkg/redis"
)

// RedisStore persists cart snapshots in Redis under per-session keys with a
// sliding TTL refreshed on every write.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (string, bool, error) {
	snapshot, err := r.client.Get(ctx, r.client.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return snapshot, true, nil
}

func (r *RedisStore) Set(ctx context.Context, sessionID string, snapshot string) error {
	return r.client.Set(ctx, r.client.CartKey(sessionID), snapshot, r.ttl)
}

func (r *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.client.CartKey(sessionID))
}
