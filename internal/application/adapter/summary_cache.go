package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SummaryCache defines the interface for caching serialized dashboard
// summaries keyed by user and month.
type SummaryCache interface {
	// Get retrieves a cached summary payload. Returns ("", nil) on a miss.
	Get(ctx context.Context, userID uuid.UUID, month time.Time) (string, error)

	// Set stores a summary payload with a TTL.
	Set(ctx context.Context, userID uuid.UUID, month time.Time, payload string, ttl time.Duration) error

	// Invalidate removes all cached summaries for a user. Called after
	// any transaction write so reads never serve stale aggregates.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
