package gameweek

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/logger"
	"github.com/osse101/Matchday_Go/internal/metrics"
)

// Fetcher loads gameweeks from the backend
type Fetcher interface {
	GetGameweek(ctx context.Context, token string, id int64) (*domain.Gameweek, error)
}

// Service resolves gameweeks, serving repeats from cache
type Service interface {
	Get(ctx context.Context, token string, id int64) (*domain.Gameweek, error)
	Invalidate(id int64)
	Clear()
	Stats() CacheStats
}

type service struct {
	fetcher Fetcher
	cache   *gameweekCache
	group   singleflight.Group
}

// NewService creates a gameweek service backed by an expiring LRU cache
func NewService(fetcher Fetcher, cfg CacheConfig) Service {
	return &service{
		fetcher: fetcher,
		cache:   newGameweekCache(cfg),
	}
}

// Get returns the gameweek. Callers must treat the result as read-only.
// Concurrent misses for the same id share one backend call.
func (s *service) Get(ctx context.Context, token string, id int64) (*domain.Gameweek, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: gameweek id %d", domain.ErrInvalidInput, id)
	}

	if gw, ok := s.cache.Get(id); ok {
		metrics.GameweekCacheHits.Inc()
		return gw, nil
	}
	metrics.GameweekCacheMisses.Inc()

	v, err, shared := s.group.Do(cacheKey(id), func() (interface{}, error) {
		gw, err := s.fetcher.GetGameweek(ctx, token, id)
		if err != nil {
			return nil, err
		}
		s.cache.Set(gw)
		return gw, nil
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgFetchFailed, "gameweek_id", id, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgFetched, "gameweek_id", id, "shared", shared)
	return v.(*domain.Gameweek), nil
}

func (s *service) Invalidate(id int64) {
	s.cache.Invalidate(id)
}

func (s *service) Clear() {
	s.cache.Clear()
}

func (s *service) Stats() CacheStats {
	return s.cache.GetStats()
}
