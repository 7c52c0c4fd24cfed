// Package cache stores computed statistics in Redis.
//
// Entries are keyed by a per-user version number. Writing a new record bumps
// the version, which orphans every cached entry of that user at once; the
// orphans expire through their TTL.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "guttracker:stats"

// NewRedisClient connects to Redis and verifies the connection
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

// StatsCache caches JSON-encoded values per user. A nil *StatsCache is a
// valid disabled cache: every lookup misses and every write is dropped.
type StatsCache struct {
	rdb    redis.UniversalClient
	ttl    time.Duration
	logger *zap.Logger
}

// NewStatsCache creates a cache whose entries live for ttl
func NewStatsCache(rdb redis.UniversalClient, ttl time.Duration, logger *zap.Logger) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl, logger: logger}
}

func versionKey(userID string) string {
	return keyPrefix + ":ver:" + userID
}

func (c *StatsCache) entryKey(ctx context.Context, userID, key string) (string, error) {
	ver, err := c.rdb.Get(ctx, versionKey(userID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("failed to read cache version: %w", err)
	}
	return keyPrefix + ":" + userID + ":v" + strconv.FormatInt(ver, 10) + ":" + key, nil
}

// Slot is the versioned key an entry was looked up under. Results computed
// after a miss are written back through the same slot, so an Invalidate that
// lands in between leaves them unreachable.
type Slot string

// Get decodes the cached value into dest and reports whether it was found,
// along with the slot to pass to Set on a miss
func (c *StatsCache) Get(ctx context.Context, userID, key string, dest any) (Slot, bool, error) {
	if c == nil {
		return "", false, nil
	}

	k, err := c.entryKey(ctx, userID, key)
	if err != nil {
		return "", false, err
	}
	slot := Slot(k)

	data, err := c.rdb.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return slot, false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read cache entry: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// a stale layout is a miss, not a failure
		c.logger.Warn("discarding undecodable cache entry", zap.String("key", k), zap.Error(err))
		return slot, false, nil
	}
	return slot, true, nil
}

// Set stores value in slot. An empty slot is ignored.
func (c *StatsCache) Set(ctx context.Context, slot Slot, value any) error {
	if c == nil || slot == "" {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	if err := c.rdb.Set(ctx, string(slot), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Invalidate drops every cached entry of the user
func (c *StatsCache) Invalidate(ctx context.Context, userID string) error {
	if c == nil {
		return nil
	}

	if err := c.rdb.Incr(ctx, versionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to bump cache version: %w", err)
	}
	return nil
}
