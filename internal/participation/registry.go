package participation

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/osse101/Matchday_Go/internal/concurrency"
	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/draft"
	"github.com/osse101/Matchday_Go/internal/gameweek"
	"github.com/osse101/Matchday_Go/internal/logger"
	"github.com/osse101/Matchday_Go/internal/metrics"
	"github.com/osse101/Matchday_Go/internal/presenter"
)

// Registry owns the open workspaces, one per user and gameweek
type Registry struct {
	mu         sync.RWMutex
	workspaces map[string]*Workspace
	locks      *concurrency.LockManager

	gameweeks gameweek.Service
	drafts    draft.Store
	submitter Submitter
	machine   presenter.Machine
	sink      presenter.EffectSink
	after     presenter.AfterFunc
	now       func() time.Time
}

// RegistryOption configures a Registry
type RegistryOption func(*Registry)

// WithClock replaces time.Now
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) { r.now = now }
}

// WithDialogTimer replaces the timer used for delayed dialog closes
func WithDialogTimer(after presenter.AfterFunc) RegistryOption {
	return func(r *Registry) { r.after = after }
}

// NewRegistry creates an empty registry
func NewRegistry(gameweeks gameweek.Service, drafts draft.Store, submitter Submitter, machine presenter.Machine, sink presenter.EffectSink, opts ...RegistryOption) *Registry {
	r := &Registry{
		workspaces: make(map[string]*Workspace),
		locks:      concurrency.NewLockManager(),
		gameweeks:  gameweeks,
		drafts:     drafts,
		submitter:  submitter,
		machine:    machine,
		sink:       sink,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func workspaceKey(userID string, gameweekID int64) string {
	return userID + ":" + strconv.FormatInt(gameweekID, 10)
}

// Open returns the user's open workspace for the gameweek, creating it when needed.
// New workspaces resume from a saved draft if one exists.
func (r *Registry) Open(ctx context.Context, identity *domain.Identity, gameweekID int64) (*Workspace, error) {
	if identity == nil || identity.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	log := logger.FromContext(ctx)
	key := workspaceKey(identity.UserID, gameweekID)

	unlock := r.locks.Lock(key)
	defer unlock()

	if ws := r.lookup(key); ws != nil {
		ws.touch()
		return ws, nil
	}

	gw, err := r.gameweeks.Get(ctx, identity.Token, gameweekID)
	if err != nil {
		return nil, err
	}
	if !gw.JoinOpen(r.now()) {
		return nil, domain.ErrJoinDeadlinePassed
	}

	ws := newWorkspace(identity.UserID, gw, r.submitter, r.now)
	opts := []presenter.Option{
		presenter.WithOnClosed(func(outcome *domain.SubmissionOutcome) {
			r.closed(context.WithoutCancel(ctx), key, ws, outcome)
		}),
	}
	if r.after != nil {
		opts = append(opts, presenter.WithAfterFunc(r.after))
	}
	ws.dialog = presenter.NewDialog(r.machine, identity.UserID, gameweekID, r.sink, opts...)
	ws.onEdit = r.saveDraft

	saved, err := r.drafts.Load(ctx, identity.UserID, gameweekID)
	switch {
	case err == nil:
		ws.Restore(saved)
		log.Info(LogMsgWorkspaceResumed, "user_id", identity.UserID, "gameweek_id", gameweekID)
	case !errors.Is(err, domain.ErrDraftNotFound):
		log.Warn(LogMsgDraftLoadFailed, "user_id", identity.UserID, "gameweek_id", gameweekID, "error", err)
	}

	r.mu.Lock()
	r.workspaces[key] = ws
	metrics.WorkspacesOpen.Set(float64(len(r.workspaces)))
	r.mu.Unlock()

	log.Info(LogMsgWorkspaceOpened, "user_id", identity.UserID, "gameweek_id", gameweekID)
	return ws, nil
}

// Get returns the open workspace or domain.ErrWorkspaceNotFound
func (r *Registry) Get(userID string, gameweekID int64) (*Workspace, error) {
	if ws := r.lookup(workspaceKey(userID, gameweekID)); ws != nil {
		return ws, nil
	}
	return nil, domain.ErrWorkspaceNotFound
}

func (r *Registry) lookup(key string) *Workspace {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.workspaces[key]
}

// closed runs when a workspace's dialog is torn down
func (r *Registry) closed(ctx context.Context, key string, ws *Workspace, outcome *domain.SubmissionOutcome) {
	r.remove(key, ws)

	if outcome != nil && outcome.IsSuccess() {
		if err := r.drafts.Delete(ctx, ws.userID, ws.gameweek.ID); err != nil {
			logger.FromContext(ctx).Warn(LogMsgDraftDeleteFailed, "user_id", ws.userID, "gameweek_id", ws.gameweek.ID, "error", err)
		}
	}
	logger.FromContext(ctx).Info(LogMsgWorkspaceClosed, "user_id", ws.userID, "gameweek_id", ws.gameweek.ID)
}

// remove drops key only if it still maps to ws
func (r *Registry) remove(key string, ws *Workspace) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.workspaces[key] != ws {
		return false
	}
	delete(r.workspaces, key)
	metrics.WorkspacesOpen.Set(float64(len(r.workspaces)))
	return true
}

func (r *Registry) saveDraft(ctx context.Context, d *draft.Draft) {
	if err := r.drafts.Save(context.WithoutCancel(ctx), d); err != nil {
		logger.FromContext(ctx).Warn(LogMsgDraftSaveFailed, "user_id", d.UserID, "gameweek_id", d.GameweekID, "error", err)
	}
}

// sweepable is false while a submit is in flight or a delayed close is pending
func sweepable(p presenter.Phase) bool {
	return p != presenter.PhaseSubmitting && p != presenter.PhaseClosing
}

// SweepIdle evicts workspaces untouched for longer than maxIdle.
// Workspaces submitting or closing are left alone; a closing one removes itself.
func (r *Registry) SweepIdle(ctx context.Context, maxIdle time.Duration) int {
	cutoff := r.now().Add(-maxIdle)

	r.mu.RLock()
	var stale []string
	for key, ws := range r.workspaces {
		if ws.LastTouched().Before(cutoff) && sweepable(ws.dialog.Phase()) {
			stale = append(stale, key)
		}
	}
	r.mu.RUnlock()

	evicted := 0
	for _, key := range stale {
		ws := r.lookup(key)
		if ws == nil || !sweepable(ws.dialog.Phase()) {
			continue
		}
		if r.remove(key, ws) {
			ws.Stop()
			evicted++
			metrics.WorkspacesEvicted.Inc()
			logger.FromContext(ctx).Info(LogMsgWorkspaceEvicted, "user_id", ws.userID, "gameweek_id", ws.gameweek.ID)
		}
	}
	return evicted
}

// Stats summarises the open workspaces
type Stats struct {
	Open    int                     `json:"open"`
	ByPhase map[presenter.Phase]int `json:"byPhase"`
}

// Stats returns counts of open workspaces by dialog phase
func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := Stats{Open: len(r.workspaces), ByPhase: make(map[presenter.Phase]int)}
	for _, ws := range r.workspaces {
		s.ByPhase[ws.dialog.Phase()]++
	}
	return s
}

// Shutdown stops pending dialog timers
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ws := range r.workspaces {
		ws.Stop()
	}
}
