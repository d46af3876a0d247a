package participation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/draft"
	"github.com/osse101/Matchday_Go/internal/gameweek"
	"github.com/osse101/Matchday_Go/internal/presenter"
	"github.com/osse101/Matchday_Go/internal/submission"
)

type staticFetcher struct {
	gw *domain.Gameweek
}

func (f staticFetcher) GetGameweek(_ context.Context, _ string, id int64) (*domain.Gameweek, error) {
	if f.gw == nil || f.gw.ID != id {
		return nil, domain.ErrGameweekNotFound
	}
	return f.gw, nil
}

type nopSink struct{}

func (nopSink) Toast(context.Context, string, string)       {}
func (nopSink) Navigate(context.Context, string, string)    {}
func (nopSink) DialogClosed(context.Context, string, int64) {}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type pendingTimers struct {
	mu  sync.Mutex
	fns []func()
}

func (p *pendingTimers) after(_ time.Duration, f func()) func() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fns = append(p.fns, f)
	return func() bool { return true }
}

func (p *pendingTimers) fireAll() {
	p.mu.Lock()
	fns := p.fns
	p.fns = nil
	p.mu.Unlock()
	for _, f := range fns {
		f()
	}
}

type fixture struct {
	registry *Registry
	remote   *submission.MockRemote
	drafts   *draft.MemoryStore
	clock    *fakeClock
	timers   *pendingTimers
	identity *domain.Identity
}

func testGameweek(deadline time.Time) *domain.Gameweek {
	return &domain.Gameweek{
		ID:           7,
		Competition:  domain.CompetitionPremierLeague,
		JoinDeadline: deadline,
		Matches: []domain.Match{
			{ID: 1, HomeTeam: "Arsenal", AwayTeam: "Chelsea"},
			{ID: 2, HomeTeam: "Leeds", AwayTeam: "Everton", IsTiebreaker: true},
		},
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	timers := &pendingTimers{}
	remote := new(submission.MockRemote)
	drafts := draft.NewMemoryStore(100, time.Hour)

	gw := testGameweek(clock.Now().Add(24 * time.Hour))
	reg := NewRegistry(
		gameweek.NewService(staticFetcher{gw: gw}, gameweek.DefaultCacheConfig()),
		drafts,
		submission.NewCoordinator(remote, nil),
		presenter.NewMachine(presenter.Config{}),
		nopSink{},
		WithClock(clock.Now),
		WithDialogTimer(timers.after),
	)
	return &fixture{
		registry: reg,
		remote:   remote,
		drafts:   drafts,
		clock:    clock,
		timers:   timers,
		identity: &domain.Identity{UserID: "user-1", Username: "alice", Token: "tok"},
	}
}

func fillScenario(t *testing.T, ws *Workspace) {
	t.Helper()
	ctx := context.Background()
	_, err := ws.SelectPick(ctx, 1, domain.PickHomeWin)
	require.NoError(t, err)
	_, err = ws.SelectPick(ctx, 2, domain.PickDraw)
	require.NoError(t, err)
	require.NoError(t, ws.SetTiebreakScore(ctx, 2, domain.SideHome, 1))
	require.NoError(t, ws.SetTiebreakScore(ctx, 2, domain.SideAway, 1))

	st := domain.SessionOneVsOne
	buyIn := "20"
	private := false
	require.NoError(t, ws.UpdateForm(ctx, FormPatch{SessionType: &st, BuyInAmount: &buyIn, IsPrivate: &private}))
}

func TestOpen_SameWorkspaceTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	b, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	assert.Same(t, a, b)

	got, err := f.registry.Get("user-1", 7)
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestOpen_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.registry.Open(ctx, nil, 7)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = f.registry.Open(ctx, f.identity, 99)
	assert.ErrorIs(t, err, domain.ErrGameweekNotFound)

	_, err = f.registry.Get("user-1", 7)
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}

func TestOpen_AfterJoinDeadline(t *testing.T) {
	f := newFixture(t)
	f.clock.Advance(48 * time.Hour)

	_, err := f.registry.Open(context.Background(), f.identity, 7)
	assert.ErrorIs(t, err, domain.ErrJoinDeadlinePassed)
}

func TestWorkspace_SuccessfulSubmitClosesAndDeletesDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	fillScenario(t, ws)
	assert.True(t, ws.View().CanSubmit)

	_, err = f.drafts.Load(ctx, "user-1", 7)
	require.NoError(t, err, "edits are persisted as a draft")

	f.remote.On("SubmitPredictions", mock.Anything, "tok", mock.MatchedBy(func(r *domain.SubmitPredictionsRequest) bool {
		return r.UserID == "user-1" && len(r.Predictions) == 2 && r.AccessKey == "" && r.Complete
	})).Return(&domain.SubmitPredictionsResponse{}, nil).Once()

	outcome, err := ws.Submit(ctx, f.identity)
	require.NoError(t, err)
	assert.True(t, outcome.IsSuccess())
	assert.Equal(t, presenter.PhaseClosing, ws.Dialog().Phase())

	f.timers.fireAll()

	assert.Equal(t, presenter.PhaseClosed, ws.Dialog().Phase())
	_, err = f.registry.Get("user-1", 7)
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
	_, err = f.drafts.Load(ctx, "user-1", 7)
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
	f.remote.AssertExpectations(t)
}

func TestWorkspace_AlreadyJoinedKeepsDialogOpen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	fillScenario(t, ws)

	f.remote.On("SubmitPredictions", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.APIError{StatusCode: 409, Body: domain.APIErrorBody{Error: domain.CodeAlreadyJoined, Message: "Already joined"}}).Once()

	outcome, err := ws.Submit(ctx, f.identity)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRetryable, outcome.Kind)

	v := ws.View()
	assert.Equal(t, presenter.PhaseRetryDisplayed, v.Dialog.Phase)
	assert.True(t, v.Dialog.Open)
	assert.True(t, v.Dialog.SubmitEnabled)
	assert.True(t, v.CanSubmit)
	assert.Equal(t, "Already joined", v.Dialog.Message)

	assert.ErrorIs(t, ws.Dismiss(ctx), domain.ErrCloseSuppressed)
	assert.ErrorIs(t, ws.RequestClose(ctx), domain.ErrCloseSuppressed)

	_, err = f.registry.Get("user-1", 7)
	assert.NoError(t, err, "workspace survives")
}

func TestWorkspace_DoubleSubmitMakesOneRequest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	fillScenario(t, ws)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.remote.On("SubmitPredictions", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(&domain.SubmitPredictionsResponse{}, nil).Once()

	done := make(chan error, 1)
	go func() {
		_, err := ws.Submit(ctx, f.identity)
		done <- err
	}()
	<-entered

	_, err = ws.Submit(ctx, f.identity)
	assert.ErrorIs(t, err, domain.ErrSubmissionInFlight)

	_, err = ws.SelectPick(ctx, 1, domain.PickAwayWin)
	assert.ErrorIs(t, err, domain.ErrSubmissionInFlight, "edits are locked while submitting")
	assert.ErrorIs(t, ws.Cancel(ctx), domain.ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	f.remote.AssertNumberOfCalls(t, "SubmitPredictions", 1)
}

func TestWorkspace_IncompleteSubmitStaysLocal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	_, err = ws.SelectPick(ctx, 1, domain.PickHomeWin)
	require.NoError(t, err)

	v := ws.View()
	assert.False(t, v.CanSubmit)
	assert.NotEmpty(t, v.Violations)

	outcome, err := ws.Submit(ctx, f.identity)
	require.NoError(t, err)
	assert.Equal(t, domain.CodePredictionsIncomplete, outcome.ErrorCode)
	assert.Equal(t, presenter.PhaseRetryDisplayed, ws.Dialog().Phase())
	f.remote.AssertNotCalled(t, "SubmitPredictions", mock.Anything, mock.Anything, mock.Anything)

	_, err = ws.SelectPick(ctx, 2, domain.PickDraw)
	require.NoError(t, err)
	assert.Equal(t, presenter.PhaseIdle, ws.Dialog().Phase(), "editing leaves the error state")
}

func TestWorkspace_CancelKeepsDraftForResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	fillScenario(t, ws)

	require.NoError(t, ws.Cancel(ctx))
	_, err = f.registry.Get("user-1", 7)
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)

	resumed, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	assert.NotSame(t, ws, resumed)

	v := resumed.View()
	assert.Equal(t, domain.PickHomeWin, v.Predictions[0].Pick)
	assert.Equal(t, domain.SessionOneVsOne, v.Form.SessionType)
	assert.Equal(t, "20", v.Form.BuyInAmount)
	assert.True(t, v.CanSubmit)
}

func TestWorkspace_FormViewHidesAccessKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)

	private := true
	key := "hunter2"
	require.NoError(t, ws.UpdateForm(ctx, FormPatch{IsPrivate: &private}))
	assert.True(t, ws.View().Form.AccessKeyRequired)
	assert.False(t, ws.View().Form.AccessKeySet)

	require.NoError(t, ws.UpdateForm(ctx, FormPatch{AccessKey: &key}))
	assert.True(t, ws.View().Form.AccessKeySet)

	saved, err := f.drafts.Load(ctx, "user-1", 7)
	require.NoError(t, err)
	assert.Empty(t, saved.Session.AccessKey)

	private = false
	require.NoError(t, ws.UpdateForm(ctx, FormPatch{IsPrivate: &private}))
	assert.False(t, ws.View().Form.AccessKeySet, "switching to public clears the key")
}

func TestWorkspace_BadBuyInIsValidationError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)

	bad := "twenty"
	require.NoError(t, ws.UpdateForm(ctx, FormPatch{BuyInAmount: &bad}))

	v := ws.View()
	require.NotEmpty(t, v.Form.Errors)
	assert.False(t, v.CanSubmit)
}

func TestSweepIdle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)

	f.clock.Advance(10 * time.Minute)
	other := &domain.Identity{UserID: "user-2", Token: "tok2"}
	active, err := f.registry.Open(ctx, other, 7)
	require.NoError(t, err)

	f.clock.Advance(25 * time.Minute)
	_, err = active.SelectPick(ctx, 1, domain.PickDraw)
	require.NoError(t, err)

	evicted := f.registry.SweepIdle(ctx, 30*time.Minute)
	assert.Equal(t, 1, evicted)

	_, err = f.registry.Get("user-1", 7)
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
	_, err = f.registry.Get("user-2", 7)
	assert.NoError(t, err)

	stats := f.registry.Stats()
	assert.Equal(t, 1, stats.Open)
	assert.Equal(t, 1, stats.ByPhase[presenter.PhaseIdle])
}

func TestSweepIdle_SkipsInFlight(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	fillScenario(t, ws)

	entered := make(chan struct{})
	release := make(chan struct{})
	f.remote.On("SubmitPredictions", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(entered)
			<-release
		}).
		Return(nil, &domain.APIError{Body: domain.APIErrorBody{Error: domain.CodeSessionFull}}).Once()

	done := make(chan struct{})
	go func() {
		_, _ = ws.Submit(ctx, f.identity)
		close(done)
	}()
	<-entered

	f.clock.Advance(time.Hour)
	assert.Equal(t, 0, f.registry.SweepIdle(ctx, 30*time.Minute))

	close(release)
	<-done
}

func TestSweepJob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	f.clock.Advance(time.Hour)

	require.NoError(t, NewSweepJob(f.registry, 30*time.Minute).Process(ctx))
	assert.Equal(t, 0, f.registry.Stats().Open)
}

func TestWorkspace_RejectedEditKeepsRetryDisplay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	fillScenario(t, ws)

	f.remote.On("SubmitPredictions", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.APIError{StatusCode: 409, Body: domain.APIErrorBody{Error: domain.CodeAlreadyJoined, Message: "Already joined"}}).Once()
	_, err = ws.Submit(ctx, f.identity)
	require.NoError(t, err)
	require.Equal(t, presenter.PhaseRetryDisplayed, ws.Dialog().Phase())

	tests := []struct {
		name string
		edit func() error
	}{
		{"unknown match", func() error {
			_, err := ws.SelectPick(ctx, 9999, domain.PickDraw)
			return err
		}},
		{"bad pick", func() error {
			_, err := ws.SelectPick(ctx, 1, domain.Pick("BOTH"))
			return err
		}},
		{"score on non-tiebreaker", func() error { return ws.SetTiebreakScore(ctx, 1, domain.SideHome, 2) }},
		{"negative score", func() error { return ws.SetTiebreakScore(ctx, 2, domain.SideAway, -1) }},
		{"bad side", func() error { return ws.SetTiebreakScore(ctx, 2, domain.Side("middle"), 1) }},
		{"empty form patch", func() error { return ws.UpdateForm(ctx, FormPatch{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = tt.edit()
			v := ws.View()
			assert.Equal(t, presenter.PhaseRetryDisplayed, v.Dialog.Phase)
			assert.Equal(t, "Already joined", v.Dialog.Message)
		})
	}

	_, err = ws.SelectPick(ctx, 1, domain.PickDraw)
	require.NoError(t, err)
	assert.Equal(t, presenter.PhaseIdle, ws.Dialog().Phase(), "an applied edit returns to idle")
}

func TestWorkspace_SubmitterPanicIsRetryable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	fillScenario(t, ws)

	f.remote.On("SubmitPredictions", mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { panic("nil response") }).
		Return(nil, nil).Once()

	outcome, err := ws.Submit(ctx, f.identity)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeRetryable, outcome.Kind)
	assert.Equal(t, domain.CodeUnknown, outcome.ErrorCode)
	assert.Equal(t, presenter.PhaseRetryDisplayed, ws.Dialog().Phase())
}

func TestSweepIdle_SkipsClosing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ws, err := f.registry.Open(ctx, f.identity, 7)
	require.NoError(t, err)
	fillScenario(t, ws)

	f.remote.On("SubmitPredictions", mock.Anything, mock.Anything, mock.Anything).
		Return(&domain.SubmitPredictionsResponse{}, nil).Once()
	_, err = ws.Submit(ctx, f.identity)
	require.NoError(t, err)
	require.Equal(t, presenter.PhaseClosing, ws.Dialog().Phase())

	f.clock.Advance(time.Hour)
	assert.Equal(t, 0, f.registry.SweepIdle(ctx, 30*time.Minute))

	f.timers.fireAll()
	assert.Equal(t, presenter.PhaseClosed, ws.Dialog().Phase(), "pending close still runs")
	_, err = f.registry.Get("user-1", 7)
	assert.ErrorIs(t, err, domain.ErrWorkspaceNotFound)
}
