package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carenet/carenet-api/internal/core/ports"
)

const (
	directoryKey = "directory:caregivers"
	directoryTTL = 5 * time.Minute
)

// DirectoryCache caches the public caregiver directory in Redis.
// The whole card list lives under one key with a short TTL; profile writes
// invalidate it so stale cards never outlive the TTL.
type DirectoryCache struct {
	client *redis.Client
}

// NewDirectoryCache creates a DirectoryCache wrapping the given Redis client.
func NewDirectoryCache(client *redis.Client) *DirectoryCache {
	return &DirectoryCache{client: client}
}

// GetCards returns the cached card list and whether the key was present.
func (c *DirectoryCache) GetCards(ctx context.Context) ([]ports.CaregiverCard, bool, error) {
	raw, err := c.client.Get(ctx, directoryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("directory cache get: %w", err)
	}

	var cards []ports.CaregiverCard
	if err := json.Unmarshal(raw, &cards); err != nil {
		// corrupt entry, treat as a miss and let the caller rebuild it
		return nil, false, nil
	}
	return cards, true, nil
}

// SetCards stores the card list (expires after directoryTTL).
func (c *DirectoryCache) SetCards(ctx context.Context, cards []ports.CaregiverCard) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("directory cache marshal: %w", err)
	}
	return c.client.Set(ctx, directoryKey, raw, directoryTTL).Err()
}

// Invalidate drops the cached list after a profile write.
func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, directoryKey).Err()
}
