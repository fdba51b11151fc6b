// Package cache provides Redis-backed caching for the integration layer.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/health-tracker/backend/internal/application/adapter"
)

// adviceCache implements the adapter.AdviceCache interface on Redis.
type adviceCache struct {
	client *redis.Client
}

// NewAdviceCache creates a new Redis-backed advice cache.
func NewAdviceCache(client *redis.Client) adapter.AdviceCache {
	return &adviceCache{
		client: client,
	}
}

func adviceKey(userID uuid.UUID) string {
	return fmt.Sprintf("advice:%s", userID)
}

// Get returns the cached advice for a user, or ("", nil) on a miss.
func (c *adviceCache) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	value, err := c.client.Get(ctx, adviceKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// Set stores advice for a user with the given TTL.
func (c *adviceCache) Set(ctx context.Context, userID uuid.UUID, advice string, ttl time.Duration) error {
	return c.client.Set(ctx, adviceKey(userID), advice, ttl).Err()
}

// Invalidate drops the cached advice for a user.
func (c *adviceCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.Del(ctx, adviceKey(userID)).Err()
}
