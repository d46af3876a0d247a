package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Gameweek errors
	ErrMsgGameweekNotFound     = "gameweek not found"
	ErrMsgMatchNotInGameweek   = "match is not part of this gameweek"
	ErrMsgJoinDeadlinePassed   = "join deadline has passed"
	ErrMsgInvalidCompetition   = "invalid competition"
	ErrMsgNotTiebreakerMatch   = "match is not a tiebreaker match"
	ErrMsgInvalidPick          = "invalid pick"
	ErrMsgInvalidSide          = "invalid score side"
	ErrMsgNegativeScore        = "score must not be negative"
	ErrMsgInvalidBuyIn         = "invalid buy-in amount"
	ErrMsgInvalidSessionType   = "invalid session type"
	ErrMsgWorkspaceNotFound    = "no open workspace for this gameweek"
	ErrMsgSubmissionInFlight   = "a submission is already in progress"
	ErrMsgDialogClosed         = "participation dialog is closed"
	ErrMsgCloseSuppressed      = "dialog cannot be closed right now"
	ErrMsgUnauthenticated      = "authentication required"
	ErrMsgForbidden            = "insufficient role"
	ErrMsgDraftNotFound        = "draft not found"
	ErrMsgBackendUnavailable   = "backend unavailable"
	ErrMsgUnexpectedStatusCode = "unexpected status code"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrGameweekNotFound   = errors.New(ErrMsgGameweekNotFound)
	ErrMatchNotInGameweek = errors.New(ErrMsgMatchNotInGameweek)
	ErrJoinDeadlinePassed = errors.New(ErrMsgJoinDeadlinePassed)
	ErrInvalidCompetition = errors.New(ErrMsgInvalidCompetition)
	ErrNotTiebreakerMatch = errors.New(ErrMsgNotTiebreakerMatch)
	ErrInvalidPick        = errors.New(ErrMsgInvalidPick)
	ErrInvalidSide        = errors.New(ErrMsgInvalidSide)
	ErrNegativeScore      = errors.New(ErrMsgNegativeScore)
	ErrInvalidBuyIn       = errors.New(ErrMsgInvalidBuyIn)
	ErrInvalidSessionType = errors.New(ErrMsgInvalidSessionType)

	// Workspace / dialog errors
	ErrWorkspaceNotFound  = errors.New(ErrMsgWorkspaceNotFound)
	ErrSubmissionInFlight = errors.New(ErrMsgSubmissionInFlight)
	ErrDialogClosed       = errors.New(ErrMsgDialogClosed)
	ErrCloseSuppressed    = errors.New(ErrMsgCloseSuppressed)

	// Identity errors
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)
	ErrForbidden       = errors.New(ErrMsgForbidden)

	// Storage / transport errors
	ErrDraftNotFound        = errors.New(ErrMsgDraftNotFound)
	ErrBackendUnavailable   = errors.New(ErrMsgBackendUnavailable)
	ErrUnexpectedStatusCode = errors.New(ErrMsgUnexpectedStatusCode)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
