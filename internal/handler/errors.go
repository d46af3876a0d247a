package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidGameweekID     = "Invalid gameweek ID"
	ErrMsgInvalidMatchID        = "Invalid match ID"

	ErrMsgGetGameweekFailed     = "Failed to load gameweek"
	ErrMsgOpenWorkspaceFailed   = "Failed to open participation workspace"
	ErrMsgUpdateWorkspaceFailed = "Failed to update participation workspace"
)

// Operation names used in logs
const (
	OpGetGameweek      = "Get gameweek"
	OpOpenWorkspace    = "Open workspace"
	OpGetWorkspace     = "Get workspace"
	OpSetPick          = "Set pick"
	OpSetTiebreakScore = "Set tiebreak score"
	OpUpdateForm       = "Update session form"
	OpSubmit           = "Submit predictions"
	OpCancel           = "Cancel dialog"
	OpDismiss          = "Dismiss dialog"
	OpClose            = "Close dialog"
)

// URL parameter names
const (
	ParamGameweekID = "gameweekID"
	ParamMatchID    = "matchID"
)

// Log messages
const (
	LogMsgServiceError     = "Service call failed"
	LogMsgSubmitCompleted  = "Submission completed"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgCacheCleared     = "Gameweek cache cleared"
	LogMsgCacheInvalidated = "Gameweek cache entry invalidated"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response"
)
