package draft

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Matchday_Go/internal/domain"
)

// MemoryStore keeps drafts in an expiring LRU. Drafts are lost on restart.
type MemoryStore struct {
	lru *expirable.LRU[string, Draft]
}

// NewMemoryStore creates a memory store holding at most size drafts for ttl each
func NewMemoryStore(size int, ttl time.Duration) *MemoryStore {
	if size <= 0 {
		size = DefaultMemorySize
	}
	return &MemoryStore{lru: expirable.NewLRU[string, Draft](size, nil, ttl)}
}

func (s *MemoryStore) Save(_ context.Context, d *Draft) error {
	cp := *d
	cp.Predictions = append([]domain.Prediction(nil), d.Predictions...)
	cp.Session.AccessKey = ""
	s.lru.Add(Key(d.UserID, d.GameweekID), cp)
	return nil
}

func (s *MemoryStore) Load(_ context.Context, userID string, gameweekID int64) (*Draft, error) {
	d, ok := s.lru.Get(Key(userID, gameweekID))
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	d.Predictions = append([]domain.Prediction(nil), d.Predictions...)
	return &d, nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string, gameweekID int64) error {
	s.lru.Remove(Key(userID, gameweekID))
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error {
	s.lru.Purge()
	return nil
}
