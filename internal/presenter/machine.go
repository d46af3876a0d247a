package presenter

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/Matchday_Go/internal/domain"
)

// Phase is the lifecycle position of the participation dialog
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseSubmitting     Phase = "submitting"
	PhaseRetryDisplayed Phase = "retry_displayed"
	PhaseClosing        Phase = "closing"
	PhaseClosed         Phase = "closed"
)

// EventType names a user gesture or system signal fed into the machine
type EventType string

const (
	EventSubmitClicked     EventType = "submit_clicked"
	EventOutcomeReceived   EventType = "outcome_received"
	EventFieldEdited       EventType = "field_edited"
	EventCancelClicked     EventType = "cancel_clicked"
	EventOverlayClicked    EventType = "overlay_clicked"
	EventCloseRequested    EventType = "close_requested"
	EventCloseDelayElapsed EventType = "close_delay_elapsed"
)

// Event is one input to Transition. Outcome is only read for EventOutcomeReceived.
type Event struct {
	Type    EventType
	Outcome domain.SubmissionOutcome
}

// EffectType names a side effect the owner of the machine must carry out
type EffectType string

const (
	EffectStartSubmit   EffectType = "start_submit"
	EffectToast         EffectType = "toast"
	EffectScheduleClose EffectType = "schedule_close"
	EffectNavigate      EffectType = "navigate"
	EffectCloseRejected EffectType = "close_rejected"
	EffectTornDown      EffectType = "torn_down"
)

// Effect is a side effect produced by a transition
type Effect struct {
	Type    EffectType
	Message string
	Target  string
	Delay   time.Duration
}

// State is the dialog state. It is a value; Transition never mutates its input.
type State struct {
	Phase   Phase
	Outcome *domain.SubmissionOutcome
	Balance *BalanceInfo
}

// Config holds the presentation constants of the dialog
type Config struct {
	SuccessCloseDelay time.Duration
	FatalCloseDelay   time.Duration
	ResultsPath       string
	LoginPath         string
	BuyInPresets      []decimal.Decimal
}

// Machine is the pure reducer behind the participation dialog
type Machine struct {
	cfg Config
}

// NewMachine fills unset config values with defaults
func NewMachine(cfg Config) Machine {
	if cfg.SuccessCloseDelay <= 0 {
		cfg.SuccessCloseDelay = DefaultSuccessCloseDelay
	}
	if cfg.FatalCloseDelay <= 0 {
		cfg.FatalCloseDelay = DefaultFatalCloseDelay
	}
	if cfg.ResultsPath == "" {
		cfg.ResultsPath = DefaultResultsPath
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = DefaultLoginPath
	}
	if len(cfg.BuyInPresets) == 0 {
		cfg.BuyInPresets, _ = ParsePresets(DefaultBuyInPresets)
	}
	return Machine{cfg: cfg}
}

// Config returns the effective configuration
func (m Machine) Config() Config {
	return m.cfg
}

// Initial is the state of a freshly opened dialog
func (m Machine) Initial() State {
	return State{Phase: PhaseIdle}
}

// Transition computes the next state and the effects to run.
// Events that are not valid in the current phase leave the state unchanged.
func (m Machine) Transition(s State, e Event) (State, []Effect) {
	switch s.Phase {
	case PhaseIdle:
		return m.fromIdle(s, e)
	case PhaseSubmitting:
		return m.fromSubmitting(s, e)
	case PhaseRetryDisplayed:
		return m.fromRetryDisplayed(s, e)
	case PhaseClosing:
		return m.fromClosing(s, e)
	}
	return s, nil
}

func (m Machine) fromIdle(s State, e Event) (State, []Effect) {
	switch e.Type {
	case EventSubmitClicked:
		return State{Phase: PhaseSubmitting}, []Effect{{Type: EffectStartSubmit}}
	case EventCancelClicked, EventOverlayClicked, EventCloseRequested:
		return State{Phase: PhaseClosed}, []Effect{{Type: EffectTornDown}}
	}
	return s, nil
}

func (m Machine) fromSubmitting(s State, e Event) (State, []Effect) {
	switch e.Type {
	case EventOutcomeReceived:
		return m.resolve(e.Outcome)
	case EventCancelClicked, EventOverlayClicked, EventCloseRequested:
		return s, []Effect{{Type: EffectCloseRejected}}
	}
	return s, nil
}

func (m Machine) resolve(o domain.SubmissionOutcome) (State, []Effect) {
	outcome := o
	switch o.Kind {
	case domain.OutcomeSuccess:
		return State{Phase: PhaseClosing, Outcome: &outcome}, []Effect{
			{Type: EffectToast, Message: o.Message},
			{Type: EffectScheduleClose, Delay: m.cfg.SuccessCloseDelay},
		}
	case domain.OutcomeFatal:
		return State{Phase: PhaseClosing, Outcome: &outcome}, []Effect{
			{Type: EffectScheduleClose, Delay: m.cfg.FatalCloseDelay},
		}
	}
	return State{
		Phase:   PhaseRetryDisplayed,
		Outcome: &outcome,
		Balance: NewBalanceInfo(o.Details, m.cfg.BuyInPresets),
	}, nil
}

func (m Machine) fromRetryDisplayed(s State, e Event) (State, []Effect) {
	switch e.Type {
	case EventFieldEdited:
		return State{Phase: PhaseIdle}, nil
	case EventSubmitClicked:
		return State{Phase: PhaseSubmitting}, []Effect{{Type: EffectStartSubmit}}
	case EventCancelClicked:
		return State{Phase: PhaseClosed}, []Effect{{Type: EffectTornDown}}
	case EventOverlayClicked, EventCloseRequested:
		return s, []Effect{{Type: EffectCloseRejected}}
	}
	return s, nil
}

func (m Machine) fromClosing(s State, e Event) (State, []Effect) {
	if e.Type != EventCloseDelayElapsed {
		return s, nil
	}
	target := m.cfg.ResultsPath
	if s.Outcome != nil && s.Outcome.IsFatal() {
		target = m.cfg.LoginPath
	}
	return State{Phase: PhaseClosed, Outcome: s.Outcome}, []Effect{
		{Type: EffectNavigate, Target: target},
		{Type: EffectTornDown},
	}
}

// SubmitEnabled reports whether the phase accepts a submit click
func (s State) SubmitEnabled() bool {
	return s.Phase == PhaseIdle || s.Phase == PhaseRetryDisplayed
}

// Open reports whether the dialog is still shown
func (s State) Open() bool {
	return s.Phase != PhaseClosed
}
