package submission

// Default messages used when the backend supplies none
const (
	MsgSuccess               = "Predictions submitted and session joined"
	MsgInsufficientBalance   = "Your balance is too low for this buy-in"
	MsgAlreadyJoined         = "You have already joined a session for this gameweek"
	MsgSessionFull           = "This session is full"
	MsgTermsNotAccepted      = "You need to accept the terms before joining"
	MsgValidationError       = "Some of your entries are invalid"
	MsgGameweekNotFound      = "This gameweek is no longer available"
	MsgInvalidBuyInAmount    = "That buy-in amount is not allowed"
	MsgSessionTypeRequired   = "Select a session type"
	MsgAccessKeyRequired     = "An access key is required for private sessions"
	MsgPredictionsProblem    = "There is a problem with your predictions"
	MsgPredictionsIncomplete = "Complete your predictions first"
	MsgNetworkError          = "Could not reach the server. Check your connection and try again"
	MsgNotLoggedIn           = "You are not logged in"
	MsgUnauthorized          = "Your session is no longer authorized"
	MsgForbidden             = "You are not allowed to do this"
	MsgTokenExpired          = "Your session has expired, please log in again"
	MsgUnknownError          = "Something went wrong. Please try again"
)

// Suggestions attached to retryable outcomes
const (
	SuggestLowerBuyIn      = "Choose a lower buy-in amount"
	SuggestTopUp           = "Top up your balance"
	SuggestCheckSessions   = "Check your active sessions"
	SuggestOtherSession    = "Pick another session type"
	SuggestAcceptTerms     = "Accept the terms and conditions"
	SuggestReviewEntries   = "Review your entries"
	SuggestPickGameweek    = "Pick another gameweek"
	SuggestPresetBuyIn     = "Choose one of the available buy-in amounts"
	SuggestSelectType      = "Select a session type"
	SuggestEnterAccessKey  = "Enter access key"
	SuggestCompletePicks   = "Complete predictions first"
	SuggestCheckConnection = "Check your connection and try again"
	SuggestRetry           = "Try again"
)

// Log messages
const (
	LogMsgSubmitStarted      = "Submitting predictions"
	LogMsgSubmitShortCircuit = "Submission blocked by local validation"
	LogMsgSubmitSucceeded    = "Predictions submitted"
	LogMsgSubmitFailed       = "Submission failed"
	LogMsgTransportFailure   = "Submission transport failure"
)
