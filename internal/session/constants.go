package session

// Validation tags
const (
	TagRequired          = "required"
	TagCompetition       = "competition"
	TagSessionType       = "session_type"
	TagPositiveAmount    = "positive_amount"
	TagAccessKeyRequired = "access_key_required"
	TagAccessKeyExcluded = "access_key_excluded"
	TagInvalidAmount     = "amount_format"
)

// JSON field names reported in FieldError.Field
const (
	FieldGameweekID  = "gameweekId"
	FieldCompetition = "competition"
	FieldSessionType = "sessionType"
	FieldBuyIn       = "buyInAmount"
	FieldIsPrivate   = "isPrivate"
	FieldAccessKey   = "accessKey"
)

// User-facing validation messages
const (
	MsgSessionTypeRequired = "Select a session type"
	MsgSessionTypeInvalid  = "Unknown session type"
	MsgCompetitionRequired = "Competition is required"
	MsgCompetitionInvalid  = "Unknown competition"
	MsgGameweekRequired    = "Gameweek is required"
	MsgBuyInPositive       = "Buy-in must be greater than zero"
	MsgBuyInFormat         = "Enter a valid amount"
	MsgAccessKeyRequired   = "Enter the access key for the private session"
	MsgAccessKeyExcluded   = "Access key is only used for private sessions"
	MsgInvalidValue        = "Invalid value"
)
