package auth

// Token transport
const (
	HeaderAuthorization   = "Authorization"
	BearerPrefix          = "Bearer "
	QueryParamAccessToken = "access_token"
)

// Signing algorithms accepted per key type
var (
	HMACMethods = []string{"HS256", "HS384", "HS512"}
	RSAMethods  = []string{"RS256", "RS384", "RS512"}
)

// Error messages
const (
	ErrMsgNoVerificationKey = "either a shared secret or an RSA public key is required"
	ErrMsgBothKeys          = "configure a shared secret or an RSA public key, not both"
	ErrMsgMissingToken      = "missing bearer token"
	ErrMsgMissingSubject    = "token has no subject"
)

// Log messages
const (
	LogMsgTokenRejected = "Bearer token rejected"
	LogMsgRoleRequired  = "Caller lacks required role"
)
