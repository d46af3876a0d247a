package gameweek

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Matchday_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

type cachedGameweek struct {
	Version  string
	Gameweek *domain.Gameweek
	CachedAt time.Time
}

// CacheConfig sizes the gameweek cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache sizing
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats is a snapshot of cache effectiveness
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// gameweekCache is an in-memory LRU of gameweeks with time and version based expiry
type gameweekCache struct {
	lru    *expirable.LRU[string, *cachedGameweek]
	hits   atomic.Int64
	misses atomic.Int64
}

func newGameweekCache(cfg CacheConfig) *gameweekCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	return &gameweekCache{
		lru: expirable.NewLRU[string, *cachedGameweek](cfg.Size, nil, cfg.TTL),
	}
}

func cacheKey(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Get returns the cached gameweek when present and written by the current schema
func (c *gameweekCache) Get(id int64) (*domain.Gameweek, bool) {
	key := cacheKey(id)
	entry, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return entry.Gameweek, true
}

func (c *gameweekCache) Set(gw *domain.Gameweek) {
	c.lru.Add(cacheKey(gw.ID), &cachedGameweek{
		Version:  CacheSchemaVersion,
		Gameweek: gw,
		CachedAt: time.Now(),
	})
}

func (c *gameweekCache) Invalidate(id int64) {
	c.lru.Remove(cacheKey(id))
}

func (c *gameweekCache) Clear() {
	c.lru.Purge()
}

// GetStats returns hit/miss counters and the current entry count
func (c *gameweekCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
