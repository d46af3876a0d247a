package presenter

import "time"

// Defaults used when a Config leaves a value unset
const (
	DefaultSuccessCloseDelay = 1500 * time.Millisecond
	DefaultFatalCloseDelay   = 2 * time.Second
	DefaultResultsPath       = "/predictions/results"
	DefaultLoginPath         = "/login"
)

// DefaultBuyInPresets are the preconfigured buy-in amounts offered in the form
var DefaultBuyInPresets = []string{"10", "20", "50", "100"}

// Log messages
const (
	LogMsgTransition      = "Dialog transition"
	LogMsgCloseSuppressed = "Dialog close suppressed"
	LogMsgEffectDropped   = "Dialog effect dropped, no sink"
)
