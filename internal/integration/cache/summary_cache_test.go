package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*summaryCache, *miniredis.Miniredis) {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	return &summaryCache{client: client}, mini
}

func TestSummaryCache_GetMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	payload, err := cache.Get(context.Background(), uuid.New(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload != "" {
		t.Errorf("expected empty payload on miss, got %q", payload)
	}
}

func TestSummaryCache_SetAndGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()
	month := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)

	if err := cache.Set(ctx, userID, month, `{"total":100}`, time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	payload, err := cache.Get(ctx, userID, month)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if payload != `{"total":100}` {
		t.Errorf("expected cached payload, got %q", payload)
	}

	// Different month of the same user is a separate key.
	other, err := cache.Get(ctx, userID, month.AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if other != "" {
		t.Errorf("expected miss for different month, got %q", other)
	}
}

func TestSummaryCache_Expiry(t *testing.T) {
	cache, mini := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()
	month := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	if err := cache.Set(ctx, userID, month, "payload", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	mini.FastForward(2 * time.Minute)

	payload, err := cache.Get(ctx, userID, month)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if payload != "" {
		t.Errorf("expected miss after expiry, got %q", payload)
	}
}

func TestSummaryCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	userID := uuid.New()
	otherUser := uuid.New()
	month := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	if err := cache.Set(ctx, userID, month, "a", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Set(ctx, userID, month.AddDate(0, -1, 0), "b", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := cache.Set(ctx, otherUser, month, "c", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if err := cache.Invalidate(ctx, userID); err != nil {
		t.Fatalf("invalidate failed: %v", err)
	}

	for _, m := range []time.Time{month, month.AddDate(0, -1, 0)} {
		payload, err := cache.Get(ctx, userID, m)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if payload != "" {
			t.Errorf("expected invalidated entry for %s, got %q", m.Format("2006-01"), payload)
		}
	}

	// Other users keep their entries.
	payload, err := cache.Get(ctx, otherUser, month)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if payload != "c" {
		t.Errorf("expected other user's entry to survive, got %q", payload)
	}
}
