package participation

import (
	"context"
	"time"

	"github.com/osse101/Matchday_Go/internal/logger"
)

// SweepJob evicts idle workspaces when run by the worker pool
type SweepJob struct {
	registry *Registry
	maxIdle  time.Duration
}

// NewSweepJob creates a sweep job
func NewSweepJob(registry *Registry, maxIdle time.Duration) *SweepJob {
	if maxIdle <= 0 {
		maxIdle = DefaultIdleTTL
	}
	return &SweepJob{registry: registry, maxIdle: maxIdle}
}

// Process implements worker.Job
func (j *SweepJob) Process(ctx context.Context) error {
	n := j.registry.SweepIdle(ctx, j.maxIdle)
	if n > 0 {
		logger.FromContext(ctx).Info(LogMsgSweepCompleted, "evicted", n)
	}
	return nil
}
