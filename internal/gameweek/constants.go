package gameweek

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute
)

// Log messages
const (
	LogMsgFetched     = "Gameweek fetched from backend"
	LogMsgFetchFailed = "Gameweek fetch failed"
)
