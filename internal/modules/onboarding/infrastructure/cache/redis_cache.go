package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/TuaBBL/beatbookingslive/internal/modules/onboarding/domain"
)

// RedisStateCache stores guard verdicts under a short TTL. Expiry is the
// only invalidation besides an explicit refresh.
type RedisStateCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStateCache(client *redis.Client, ttl time.Duration) *RedisStateCache {
	return &RedisStateCache{client: client, ttl: ttl}
}

func stateKey(userID uuid.UUID) string {
	return fmt.Sprintf("onboarding:state:%s", userID)
}

// Get returns nil, nil on a cache miss
func (c *RedisStateCache) Get(ctx context.Context, userID uuid.UUID) (*domain.State, error) {
	data, err := c.client.Get(ctx, stateKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state domain.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *RedisStateCache) Set(ctx context.Context, userID uuid.UUID, state *domain.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, stateKey(userID), data, c.ttl).Err()
}

func (c *RedisStateCache) Delete(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, stateKey(userID)).Err()
}
