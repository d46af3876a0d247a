package draft

import "time"

// Store kinds accepted by New
const (
	KindMemory = "memory"
	KindRedis  = "redis"
)

const (
	DefaultTTL        = 7 * 24 * time.Hour
	DefaultMemorySize = 10000
	RedisKeyPrefix    = "matchday:draft:"
)

// Log messages
const (
	LogMsgRedisConnected = "Connected to Redis draft store"
	LogMsgStoreSelected  = "Draft store selected"
)
