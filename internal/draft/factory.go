package draft

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Matchday_Go/internal/logger"
)

// Config selects and sizes the draft store
type Config struct {
	Kind       string
	RedisURL   string
	TTL        time.Duration
	MemorySize int
}

// New builds the configured store
func New(ctx context.Context, cfg Config) (Store, error) {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	logger.FromContext(ctx).Info(LogMsgStoreSelected, "kind", cfg.Kind, "ttl", cfg.TTL)

	switch cfg.Kind {
	case KindRedis:
		return NewRedisStore(ctx, cfg.RedisURL, cfg.TTL)
	case KindMemory, "":
		return NewMemoryStore(cfg.MemorySize, cfg.TTL), nil
	}
	return nil, fmt.Errorf("unknown draft store kind %q", cfg.Kind)
}
