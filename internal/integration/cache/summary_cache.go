// Package cache implements Redis-backed caches for expensive read paths.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mintmind/backend/internal/application/adapter"
)

const summaryKeyPrefix = "summary"

// summaryCache implements the adapter.SummaryCache interface on Redis.
type summaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a new Redis-backed summary cache.
func NewSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &summaryCache{
		client: client,
	}
}

func summaryKey(userID uuid.UUID, month time.Time) string {
	return fmt.Sprintf("%s:%s:%s", summaryKeyPrefix, userID, month.Format("2006-01"))
}

// Get retrieves a cached summary payload. Returns ("", nil) on a miss.
func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID, month time.Time) (string, error) {
	payload, err := c.client.Get(ctx, summaryKey(userID, month)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return payload, nil
}

// Set stores a summary payload with a TTL.
func (c *summaryCache) Set(ctx context.Context, userID uuid.UUID, month time.Time, payload string, ttl time.Duration) error {
	return c.client.Set(ctx, summaryKey(userID, month), payload, ttl).Err()
}

// Invalidate removes all cached summaries for a user. SCAN keeps the
// operation incremental so it never blocks Redis on large keyspaces.
func (c *summaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("%s:%s:*", summaryKeyPrefix, userID)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
