package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/logger"
)

// RedisStore keeps drafts as JSON strings with a TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to the Redis instance at url (redis://host:port/db)
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgRedisConnected, "addr", opts.Addr, "db", opts.DB)
	return &RedisStore{client: client, ttl: ttl}, nil
}

func redisKey(userID string, gameweekID int64) string {
	return RedisKeyPrefix + Key(userID, gameweekID)
}

func (s *RedisStore) Save(ctx context.Context, d *Draft) error {
	cp := *d
	cp.Session.AccessKey = ""
	payload, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(d.UserID, d.GameweekID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, userID string, gameweekID int64) (*Draft, error) {
	raw, err := s.client.Get(ctx, redisKey(userID, gameweekID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var d Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &d, nil
}

func (s *RedisStore) Delete(ctx context.Context, userID string, gameweekID int64) error {
	if err := s.client.Del(ctx, redisKey(userID, gameweekID)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("error closing Redis connection: %w", err)
	}
	return nil
}
