package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion    = "ENV_SCHEMA_VERSION"
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvEnvironment      = "ENVIRONMENT"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvBackendAPIURL    = "BACKEND_API_URL"
	EnvBackendAPIKey    = "BACKEND_API_KEY"
	EnvBackendRetries   = "BACKEND_MAX_RETRIES"
	EnvBackendGetTO     = "BACKEND_GET_TIMEOUT"
	EnvJWTSecret        = "JWT_SECRET"
	EnvJWTPublicKey     = "JWT_PUBLIC_KEY"
	EnvJWTIssuer        = "JWT_ISSUER"
	EnvJWTAudience      = "JWT_AUDIENCE"
	EnvBuyInPresets     = "BUY_IN_PRESETS"
	EnvSuccessDelay     = "SUCCESS_CLOSE_DELAY"
	EnvFatalDelay       = "FATAL_CLOSE_DELAY"
	EnvResultsPath      = "RESULTS_PATH"
	EnvLoginPath        = "LOGIN_PATH"
	EnvDraftStore       = "DRAFT_STORE"
	EnvRedisURL         = "REDIS_URL"
	EnvDraftTTL         = "DRAFT_TTL"
	EnvGameweekCacheSz  = "GAMEWEEK_CACHE_SIZE"
	EnvGameweekCacheTTL = "GAMEWEEK_CACHE_TTL"
	EnvWorkspaceIdleTTL = "WORKSPACE_IDLE_TTL"
	EnvSweepInterval    = "SWEEP_INTERVAL"
	EnvWorkerCount      = "WORKER_COUNT"
	EnvWorkerQueueSize  = "WORKER_QUEUE_SIZE"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultServiceName      = "matchday"
	DefaultEnvironment      = "dev"
	DefaultBackendRetries   = 3
	DefaultBackendGetTO     = 10 * time.Second
	DefaultBuyInPresets     = "10,20,50,100"
	DefaultSuccessDelay     = 1500 * time.Millisecond
	DefaultFatalDelay       = 2 * time.Second
	DefaultResultsPath      = "/predictions/results"
	DefaultLoginPath        = "/login"
	DefaultDraftStore       = "memory"
	DefaultDraftTTL         = 7 * 24 * time.Hour
	DefaultGameweekCacheSz  = 256
	DefaultGameweekCacheTTL = 5 * time.Minute
	DefaultWorkspaceIdleTTL = 30 * time.Minute
	DefaultSweepInterval    = time.Minute
	DefaultWorkerCount      = 2
	DefaultWorkerQueueSize  = 16
)
