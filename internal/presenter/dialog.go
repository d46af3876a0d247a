package presenter

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Matchday_Go/internal/domain"
	"github.com/osse101/Matchday_Go/internal/logger"
	"github.com/osse101/Matchday_Go/internal/metrics"
)

// EffectSink delivers dialog side effects to the user's client
type EffectSink interface {
	Toast(ctx context.Context, userID, message string)
	Navigate(ctx context.Context, userID, target string)
	DialogClosed(ctx context.Context, userID string, gameweekID int64)
}

// AfterFunc schedules f after d and returns a function that cancels it
type AfterFunc func(d time.Duration, f func()) (stop func() bool)

func timeAfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Option configures a Dialog
type Option func(*Dialog)

// WithAfterFunc replaces the timer used for delayed closes
func WithAfterFunc(fn AfterFunc) Option {
	return func(d *Dialog) { d.after = fn }
}

// WithOnClosed registers a callback run once the dialog is torn down
func WithOnClosed(fn func(outcome *domain.SubmissionOutcome)) Option {
	return func(d *Dialog) { d.onClosed = fn }
}

// Dialog is the single authority on whether the participation dialog is shown.
// Callers request changes; the dialog accepts or rejects them.
type Dialog struct {
	mu         sync.Mutex
	machine    Machine
	state      State
	userID     string
	gameweekID int64
	sink       EffectSink
	after      AfterFunc
	stopTimer  func() bool
	onClosed   func(outcome *domain.SubmissionOutcome)
}

// NewDialog opens a dialog in the idle phase
func NewDialog(machine Machine, userID string, gameweekID int64, sink EffectSink, opts ...Option) *Dialog {
	d := &Dialog{
		machine:    machine,
		state:      machine.Initial(),
		userID:     userID,
		gameweekID: gameweekID,
		sink:       sink,
		after:      timeAfterFunc,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// View is the render model of the dialog
type View struct {
	Phase         Phase              `json:"phase"`
	Open          bool               `json:"open"`
	SubmitEnabled bool               `json:"submitEnabled"`
	Editable      bool               `json:"editable"`
	Kind          domain.OutcomeKind `json:"kind,omitempty"`
	ErrorCode     string             `json:"errorCode,omitempty"`
	Message       string             `json:"message,omitempty"`
	Suggestions   []string           `json:"suggestions,omitempty"`
	Balance       *BalanceInfo       `json:"balance,omitempty"`
}

// View returns the current render model
func (d *Dialog) View() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := d.state
	v := View{
		Phase:         s.Phase,
		Open:          s.Open(),
		SubmitEnabled: s.SubmitEnabled(),
		Editable:      s.Phase == PhaseIdle || s.Phase == PhaseRetryDisplayed,
		Balance:       s.Balance,
	}
	if s.Outcome != nil {
		v.Kind = s.Outcome.Kind
		v.ErrorCode = s.Outcome.ErrorCode
		v.Message = s.Outcome.Message
		v.Suggestions = append([]string(nil), s.Outcome.Suggestions...)
	}
	return v
}

// Phase returns the current phase
func (d *Dialog) Phase() Phase {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state.Phase
}

// Begin moves the dialog into submitting. Only one caller wins per submit.
func (d *Dialog) Begin(ctx context.Context) error {
	effects, prev := d.fire(ctx, Event{Type: EventSubmitClicked})
	if hasEffect(effects, EffectStartSubmit) {
		return nil
	}
	return phaseError(prev)
}

// Resolve feeds the submission outcome into the dialog
func (d *Dialog) Resolve(ctx context.Context, outcome domain.SubmissionOutcome) {
	d.fire(ctx, Event{Type: EventOutcomeReceived, Outcome: outcome})
}

// Editable reports whether a field edit would currently be accepted.
// It does not change the phase.
func (d *Dialog) Editable() error {
	d.mu.Lock()
	phase := d.state.Phase
	d.mu.Unlock()
	if phase != PhaseIdle && phase != PhaseRetryDisplayed {
		return phaseError(phase)
	}
	return nil
}

// Edit signals an applied field edit. It fails while a submit is in flight or after close.
func (d *Dialog) Edit(ctx context.Context) error {
	if err := d.Editable(); err != nil {
		return err
	}
	d.fire(ctx, Event{Type: EventFieldEdited})
	return nil
}

// Cancel is the explicit cancel action
func (d *Dialog) Cancel(ctx context.Context) error {
	return d.close(ctx, EventCancelClicked)
}

// Dismiss is an overlay click
func (d *Dialog) Dismiss(ctx context.Context) error {
	return d.close(ctx, EventOverlayClicked)
}

// RequestClose is a close request from the surrounding page
func (d *Dialog) RequestClose(ctx context.Context) error {
	return d.close(ctx, EventCloseRequested)
}

// Stop cancels a pending delayed close without running it
func (d *Dialog) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopTimer != nil {
		d.stopTimer()
		d.stopTimer = nil
	}
}

func (d *Dialog) close(ctx context.Context, t EventType) error {
	effects, prev := d.fire(ctx, Event{Type: t})
	switch {
	case hasEffect(effects, EffectTornDown):
		return nil
	case hasEffect(effects, EffectCloseRejected):
		if prev == PhaseSubmitting {
			return domain.ErrSubmissionInFlight
		}
		metrics.CloseSuppressed.Inc()
		logger.FromContext(ctx).Info(LogMsgCloseSuppressed, "user_id", d.userID, "gameweek_id", d.gameweekID, "event", t)
		return domain.ErrCloseSuppressed
	case prev == PhaseClosed:
		return domain.ErrDialogClosed
	}
	// already closing on its own
	return nil
}

// fire runs one transition under the lock and its effects outside it
func (d *Dialog) fire(ctx context.Context, e Event) ([]Effect, Phase) {
	d.mu.Lock()
	prev := d.state.Phase
	next, effects := d.machine.Transition(d.state, e)
	d.state = next
	for _, eff := range effects {
		if eff.Type == EffectScheduleClose {
			d.stopTimer = d.after(eff.Delay, func() {
				d.fire(context.Background(), Event{Type: EventCloseDelayElapsed})
			})
		}
	}
	if next.Phase == PhaseClosed {
		d.stopTimer = nil
	}
	d.mu.Unlock()

	if prev != next.Phase {
		metrics.DialogTransitions.WithLabelValues(string(prev), string(next.Phase)).Inc()
		logger.FromContext(ctx).Debug(LogMsgTransition,
			"user_id", d.userID, "gameweek_id", d.gameweekID,
			"from", prev, "to", next.Phase, "event", e.Type)
	}

	d.run(ctx, effects, next)
	return effects, prev
}

func (d *Dialog) run(ctx context.Context, effects []Effect, s State) {
	for _, eff := range effects {
		switch eff.Type {
		case EffectToast:
			if d.sink != nil {
				d.sink.Toast(ctx, d.userID, eff.Message)
			}
		case EffectNavigate:
			if d.sink != nil {
				d.sink.Navigate(ctx, d.userID, eff.Target)
			}
		case EffectTornDown:
			if d.sink != nil {
				d.sink.DialogClosed(ctx, d.userID, d.gameweekID)
			}
			if d.onClosed != nil {
				d.onClosed(s.Outcome)
			}
		}
	}
}

func hasEffect(effects []Effect, t EffectType) bool {
	for _, e := range effects {
		if e.Type == t {
			return true
		}
	}
	return false
}

func phaseError(p Phase) error {
	if p == PhaseClosing || p == PhaseClosed {
		return domain.ErrDialogClosed
	}
	return domain.ErrSubmissionInFlight
}
