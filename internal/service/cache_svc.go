package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache TTLs. Writes invalidate eagerly, so the TTL is only a backstop
// against missed invalidations.
const (
	VoterCacheTTL       = 5 * time.Minute
	ContentCacheTTL     = 5 * time.Minute
	LeaderboardCacheTTL = 5 * time.Minute
)

// CacheService provides a Redis cache-aside layer for voter profiles,
// content stats and the leaderboard. Its contract is invalidate-on-write:
// every committed judgment invalidates the voter, content and
// leaderboard keys it touched.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

func (c *CacheService) get(ctx context.Context, key string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

func (c *CacheService) set(ctx context.Context, key string, data interface{}, ttl time.Duration) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

func (c *CacheService) del(ctx context.Context, key string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, key).Err()
}

// GetVoter retrieves a cached voter profile. Returns nil if not cached.
func (c *CacheService) GetVoter(ctx context.Context, voterID string) ([]byte, error) {
	return c.get(ctx, voterKey(voterID))
}

// SetVoter stores a voter profile response in cache.
func (c *CacheService) SetVoter(ctx context.Context, voterID string, data interface{}) error {
	return c.set(ctx, voterKey(voterID), data, VoterCacheTTL)
}

// InvalidateVoter removes a voter from cache (called after each judgment).
func (c *CacheService) InvalidateVoter(ctx context.Context, voterID string) error {
	return c.del(ctx, voterKey(voterID))
}

// GetContent retrieves cached content stats. Returns nil if not cached.
func (c *CacheService) GetContent(ctx context.Context, contentID string) ([]byte, error) {
	return c.get(ctx, contentKey(contentID))
}

// SetContent stores a content stats response in cache.
func (c *CacheService) SetContent(ctx context.Context, contentID string, data interface{}) error {
	return c.set(ctx, contentKey(contentID), data, ContentCacheTTL)
}

// InvalidateContent removes content stats from cache.
func (c *CacheService) InvalidateContent(ctx context.Context, contentID string) error {
	return c.del(ctx, contentKey(contentID))
}

// GetLeaderboard retrieves the cached leaderboard. Returns nil if not cached.
func (c *CacheService) GetLeaderboard(ctx context.Context) ([]byte, error) {
	return c.get(ctx, leaderboardKey)
}

// SetLeaderboard stores the leaderboard in cache.
func (c *CacheService) SetLeaderboard(ctx context.Context, data interface{}) error {
	return c.set(ctx, leaderboardKey, data, LeaderboardCacheTTL)
}

// InvalidateLeaderboard drops the cached leaderboard.
func (c *CacheService) InvalidateLeaderboard(ctx context.Context) error {
	return c.del(ctx, leaderboardKey)
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

const leaderboardKey = "leaderboard:top"

func voterKey(voterID string) string {
	return fmt.Sprintf("voter:%s", voterID)
}

func contentKey(contentID string) string {
	return fmt.Sprintf("content:%s", contentID)
}
