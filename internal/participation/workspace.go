package participation

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/draft"
	"github.com/osse101/Matchday_Go/internal/logger"
	"github.com/osse101/Matchday_Go/internal/prediction"
	"github.com/osse101/Matchday_Go/internal/presenter"
	"github.com/osse101/Matchday_Go/internal/session"
	"github.com/osse101/Matchday_Go/internal/submission"
)

// Submitter is the coordinator side of a workspace submit
type Submitter interface {
	SubmitCaptured(ctx context.Context, identity *domain.Identity, sub submission.Submission) domain.SubmissionOutcome
}

// FormPatch is a partial form edit. Nil fields are left alone.
type FormPatch struct {
	SessionType *domain.SessionType `json:"sessionType,omitempty"`
	BuyInAmount *string             `json:"buyInAmount,omitempty"`
	IsPrivate   *bool               `json:"isPrivate,omitempty"`
	AccessKey   *string             `json:"accessKey,omitempty"`
}

// Workspace is one user's page state for one gameweek: picks, session form and dialog
type Workspace struct {
	mu          sync.Mutex
	userID      string
	gameweek    *domain.Gameweek
	collector   *prediction.Collector
	form        *session.Form
	dialog      *presenter.Dialog
	submitter   Submitter
	onEdit      func(ctx context.Context, d *draft.Draft)
	now         func() time.Time
	lastTouched time.Time
}

func newWorkspace(userID string, gw *domain.Gameweek, submitter Submitter, now func() time.Time) *Workspace {
	return &Workspace{
		userID:      userID,
		gameweek:    gw,
		collector:   prediction.NewCollector(gw),
		form:        session.NewForm(gw),
		submitter:   submitter,
		now:         now,
		lastTouched: now(),
	}
}

// UserID returns the owning user
func (w *Workspace) UserID() string { return w.userID }

// Gameweek returns the gameweek being predicted
func (w *Workspace) Gameweek() *domain.Gameweek { return w.gameweek }

// Dialog returns the participation dialog
func (w *Workspace) Dialog() *presenter.Dialog { return w.dialog }

// SelectPick toggles a pick. Rejected while a submit is in flight.
// A rejected pick leaves the dialog where it was.
func (w *Workspace) SelectPick(ctx context.Context, matchID int64, pick domain.Pick) (domain.Pick, error) {
	w.mu.Lock()
	if err := w.dialog.Editable(); err != nil {
		w.mu.Unlock()
		return domain.PickNone, err
	}
	got, err := w.collector.SelectPick(matchID, pick)
	if err != nil {
		w.mu.Unlock()
		return domain.PickNone, err
	}
	d, err := w.editedLocked(ctx)
	w.mu.Unlock()

	if err != nil {
		return domain.PickNone, err
	}
	w.persist(ctx, d)
	return got, nil
}

// SetTiebreakScore sets one side of a tiebreaker score
func (w *Workspace) SetTiebreakScore(ctx context.Context, matchID int64, side domain.Side, value int) error {
	w.mu.Lock()
	if err := w.dialog.Editable(); err != nil {
		w.mu.Unlock()
		return err
	}
	if err := w.collector.SetTiebreakScore(matchID, side, value); err != nil {
		w.mu.Unlock()
		return err
	}
	d, err := w.editedLocked(ctx)
	w.mu.Unlock()

	if err != nil {
		return err
	}
	w.persist(ctx, d)
	return nil
}

func (p FormPatch) empty() bool {
	return p.SessionType == nil && p.BuyInAmount == nil && p.IsPrivate == nil && p.AccessKey == nil
}

// UpdateForm applies a partial edit to the session form.
// Bad buy-in text is kept as a validation error rather than returned.
// An empty patch changes nothing.
func (w *Workspace) UpdateForm(ctx context.Context, patch FormPatch) error {
	w.mu.Lock()
	if err := w.dialog.Editable(); err != nil {
		w.mu.Unlock()
		return err
	}
	if patch.empty() {
		w.lastTouched = w.now()
		w.mu.Unlock()
		return nil
	}
	if patch.SessionType != nil {
		w.form.SetSessionType(*patch.SessionType)
	}
	if patch.BuyInAmount != nil {
		_ = w.form.SetBuyInString(*patch.BuyInAmount)
	}
	if patch.IsPrivate != nil {
		w.form.SetPrivate(*patch.IsPrivate)
	}
	if patch.AccessKey != nil {
		w.form.SetAccessKey(*patch.AccessKey)
	}
	d, err := w.editedLocked(ctx)
	w.mu.Unlock()

	if err != nil {
		return err
	}
	w.persist(ctx, d)
	return nil
}

// editedLocked tells the dialog an edit was applied and snapshots the draft.
// Caller must hold w.mu.
func (w *Workspace) editedLocked(ctx context.Context) (*draft.Draft, error) {
	if err := w.dialog.Edit(ctx); err != nil {
		return nil, err
	}
	return w.touchLocked(), nil
}

// Submit runs one submission. A second call while the first is in flight
// fails with domain.ErrSubmissionInFlight and makes no request.
func (w *Workspace) Submit(ctx context.Context, identity *domain.Identity) (domain.SubmissionOutcome, error) {
	w.mu.Lock()
	if err := w.dialog.Begin(ctx); err != nil {
		w.mu.Unlock()
		return domain.SubmissionOutcome{}, err
	}
	sub := submission.Capture(w.collector, w.form)
	w.lastTouched = w.now()
	w.mu.Unlock()

	outcome := w.submitCaptured(ctx, identity, sub)
	w.dialog.Resolve(ctx, outcome)
	return outcome, nil
}

// submitCaptured turns a panicking submitter into a retryable outcome so the
// dialog always leaves Submitting
func (w *Workspace) submitCaptured(ctx context.Context, identity *domain.Identity, sub submission.Submission) (outcome domain.SubmissionOutcome) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.FromContext(ctx).Error(LogMsgSubmitPanicked, "user_id", w.userID, "gameweek_id", w.gameweek.ID, "panic", rec)
			outcome = submission.DefaultCatalog().Local(domain.CodeUnknown, "")
		}
	}()
	return w.submitter.SubmitCaptured(ctx, identity, sub)
}

// Cancel is the explicit cancel button
func (w *Workspace) Cancel(ctx context.Context) error {
	w.touch()
	return w.dialog.Cancel(ctx)
}

// Dismiss is an overlay click
func (w *Workspace) Dismiss(ctx context.Context) error {
	w.touch()
	return w.dialog.Dismiss(ctx)
}

// RequestClose is a close request from the surrounding page
func (w *Workspace) RequestClose(ctx context.Context) error {
	w.touch()
	return w.dialog.RequestClose(ctx)
}

// FormView is the render model of the session form. The access key is never echoed.
type FormView struct {
	SessionType        domain.SessionType          `json:"sessionType"`
	BuyInAmount        string                      `json:"buyInAmount"`
	IsPrivate          bool                        `json:"isPrivate"`
	AccessKeyRequired  bool                        `json:"accessKeyRequired"`
	AccessKeySet       bool                        `json:"accessKeySet"`
	SessionTypeOptions []session.SessionTypeOption `json:"sessionTypeOptions"`
	Errors             []session.FieldError        `json:"errors"`
}

// View is the render model of the whole workspace
type View struct {
	Gameweek    *domain.Gameweek       `json:"gameweek"`
	Predictions []domain.Prediction    `json:"predictions"`
	ScoreFlags  map[int64]string       `json:"scoreFlags"`
	Violations  []prediction.Violation `json:"violations"`
	Form        FormView               `json:"form"`
	Dialog      presenter.View         `json:"dialog"`
	CanSubmit   bool                   `json:"canSubmit"`
}

// View snapshots the workspace for rendering
func (w *Workspace) View() View {
	w.mu.Lock()
	defer w.mu.Unlock()

	req := w.form.Request()
	fieldErrors := w.form.Validate()
	violations := w.collector.ValidateComplete()
	dialog := w.dialog.View()

	return View{
		Gameweek:    w.gameweek,
		Predictions: w.collector.Predictions(),
		ScoreFlags:  w.collector.ScoreFlags(),
		Violations:  violations,
		Form: FormView{
			SessionType:        req.SessionType,
			BuyInAmount:        req.BuyInAmount.String(),
			IsPrivate:          req.IsPrivate,
			AccessKeyRequired:  w.form.AccessKeyRequired(),
			AccessKeySet:       req.AccessKey != "",
			SessionTypeOptions: session.SessionTypeOptions(),
			Errors:             fieldErrors,
		},
		Dialog:    dialog,
		CanSubmit: dialog.SubmitEnabled && len(violations) == 0 && len(fieldErrors) == 0,
	}
}

// Restore loads a saved draft into the collector and form
func (w *Workspace) Restore(d *draft.Draft) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.collector.Restore(d.Predictions)
	w.form.Restore(d.Session)
}

// LastTouched is the time of the last user interaction
func (w *Workspace) LastTouched() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastTouched
}

// Stop cancels any pending delayed close
func (w *Workspace) Stop() {
	w.dialog.Stop()
}

func (w *Workspace) touch() {
	w.mu.Lock()
	w.lastTouched = w.now()
	w.mu.Unlock()
}

// touchLocked records activity and returns a draft snapshot. Caller holds w.mu.
func (w *Workspace) touchLocked() *draft.Draft {
	w.lastTouched = w.now()
	return &draft.Draft{
		UserID:      w.userID,
		GameweekID:  w.gameweek.ID,
		Predictions: w.collector.Predictions(),
		Session:     w.form.Request(),
		UpdatedAt:   w.lastTouched,
	}
}

func (w *Workspace) persist(ctx context.Context, d *draft.Draft) {
	if w.onEdit != nil {
		w.onEdit(ctx, d)
	}
}
