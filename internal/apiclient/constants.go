package apiclient

import "time"

// Backend paths
const (
	PathGameweek           = "/gameweeks/%d"
	PathSubmitPredictions  = "/predictions/submit-predictions"
	HeaderContentType      = "Content-Type"
	HeaderAuthorization    = "Authorization"
	HeaderAPIKey           = "X-API-Key"
	ContentTypeJSON        = "application/json"
	BearerPrefix           = "Bearer "
	maxErrorBodyBytes      = 1 << 20
	DefaultMaxRetries      = 3
	DefaultRetryDelay      = 500 * time.Millisecond
	DefaultGetTimeout      = 10 * time.Second
	DefaultIdleConnTimeout = 90 * time.Second
)

// Log messages
const (
	LogMsgRetrying          = "Retrying backend request"
	LogMsgRequestFailed     = "Backend request failed"
	LogMsgServerError       = "Backend server error, will retry"
	LogMsgUndecodableOK     = "Backend accepted submission but the body could not be decoded"
	LogMsgUnstructuredError = "Backend error without a structured body"
	LogMsgErrorWithOKStatus = "Backend reported an error with a success status"
)
