package draft

import (
	"context"
	"strconv"
	"time"

	"github.com/osse101/Matchday_Go/internal/domain"
)

// Draft is the unsubmitted state of a user's workspace for one gameweek.
// Access keys are never persisted.
type Draft struct {
	UserID      string                    `json:"userId"`
	GameweekID  int64                     `json:"gameweekId"`
	Predictions []domain.Prediction       `json:"predictions"`
	Session     domain.SessionJoinRequest `json:"session"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

// Store persists drafts between workspace lifetimes
type Store interface {
	Save(ctx context.Context, d *Draft) error
	// Load returns domain.ErrDraftNotFound when nothing is stored
	Load(ctx context.Context, userID string, gameweekID int64) (*Draft, error)
	Delete(ctx context.Context, userID string, gameweekID int64) error
	Ping(ctx context.Context) error
	Close() error
}

// Key is the storage key of a draft
func Key(userID string, gameweekID int64) string {
	return userID + ":" + strconv.FormatInt(gameweekID, 10)
}
