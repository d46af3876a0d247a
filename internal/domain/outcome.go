package domain

// OutcomeKind buckets a submission result
type OutcomeKind string

const (
	OutcomeSuccess   OutcomeKind = "success"
	OutcomeRetryable OutcomeKind = "retryable"
	OutcomeFatal     OutcomeKind = "fatal"
)

// Backend and locally generated error codes
const (
	CodeInsufficientBalance   = "INSUFFICIENT_BALANCE"
	CodeAlreadyJoined         = "ALREADY_JOINED"
	CodeSessionFull           = "SESSION_FULL"
	CodeTermsNotAccepted      = "TERMS_NOT_ACCEPTED"
	CodeValidationError       = "VALIDATION_ERROR"
	CodeGameweekNotFound      = "GAMEWEEK_NOT_FOUND"
	CodeInvalidBuyInAmount    = "INVALID_BUY_IN_AMOUNT"
	CodeSessionTypeRequired   = "SESSION_TYPE_REQUIRED"
	CodeAccessKeyRequired     = "ACCESS_KEY_REQUIRED"
	CodePredictionsPrefix     = "PREDICTIONS_"
	CodePredictionsIncomplete = "PREDICTIONS_INCOMPLETE"
	CodeNetworkError          = "NETWORK_ERROR"
	CodeUserNotLoggedIn       = "USER_NOT_LOGGED_IN"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodeForbidden             = "FORBIDDEN"
	CodeTokenExpired          = "TOKEN_EXPIRED"
	CodeUnknown               = "UNKNOWN_ERROR"
)

// SubmissionOutcome is the tagged union the presenter consumes.
// ErrorCode, Details and Suggestions are only meaningful for non-success kinds.
type SubmissionOutcome struct {
	Kind          OutcomeKind           `json:"kind"`
	ErrorCode     string                `json:"errorCode,omitempty"`
	Message       string                `json:"message"`
	Details       *BalanceDetails       `json:"details,omitempty"`
	Suggestions   []string              `json:"suggestions,omitempty"`
	Participation *SessionParticipation `json:"participation,omitempty"`
}

// Success builds a success outcome
func Success(message string, participation *SessionParticipation) SubmissionOutcome {
	return SubmissionOutcome{Kind: OutcomeSuccess, Message: message, Participation: participation}
}

// Retryable builds a retryable error outcome
func Retryable(code, message string, details *BalanceDetails, suggestions ...string) SubmissionOutcome {
	return SubmissionOutcome{
		Kind:        OutcomeRetryable,
		ErrorCode:   code,
		Message:     message,
		Details:     details,
		Suggestions: suggestions,
	}
}

// Fatal builds a fatal error outcome
func Fatal(code, message string) SubmissionOutcome {
	return SubmissionOutcome{Kind: OutcomeFatal, ErrorCode: code, Message: message}
}

// IsSuccess reports whether the outcome is a success
func (o SubmissionOutcome) IsSuccess() bool { return o.Kind == OutcomeSuccess }

// IsFatal reports whether the outcome is fatal
func (o SubmissionOutcome) IsFatal() bool { return o.Kind == OutcomeFatal }
