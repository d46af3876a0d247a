package sse

import (
	"context"

	"github.com/osse101/Matchday_Go/internal/logger"
	"github.com/osse101/Matchday_Go/internal/metrics"
)

// Sink pushes participation dialog side effects to the owning user's streams.
// It satisfies presenter.EffectSink.
type Sink struct {
	hub *Hub
}

// NewSink creates a Sink publishing through hub
func NewSink(hub *Hub) *Sink {
	return &Sink{hub: hub}
}

func (s *Sink) Toast(ctx context.Context, userID, message string) {
	s.push(ctx, userID, EventTypeToast, ToastPayload{Message: message})
}

func (s *Sink) Navigate(ctx context.Context, userID, target string) {
	s.push(ctx, userID, EventTypeNavigate, NavigatePayload{Target: target})
}

func (s *Sink) DialogClosed(ctx context.Context, userID string, gameweekID int64) {
	s.push(ctx, userID, EventTypeDialogClosed, DialogClosedPayload{GameweekID: gameweekID})
}

func (s *Sink) push(ctx context.Context, userID, eventType string, payload interface{}) {
	if !s.hub.Publish(userID, eventType, payload) {
		return
	}
	metrics.EventsPushed.WithLabelValues(eventType).Inc()
	logger.FromContext(ctx).Debug(LogMsgEventPublished,
		"event_type", eventType,
		"user_id", userID)
}
