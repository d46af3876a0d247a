package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	ServiceName    string
	Version        string
	Environment    string
	TrustedProxies []string

	// Remote prediction backend
	BackendAPIURL     string
	BackendAPIKey     string
	BackendMaxRetries int
	BackendGetTimeout time.Duration

	// Identity provider token verification; exactly one key is set
	JWTSecret    string
	JWTPublicKey string
	JWTIssuer    string
	JWTAudience  string

	// Participation dialog
	BuyInPresets      []string
	SuccessCloseDelay time.Duration
	FatalCloseDelay   time.Duration
	ResultsPath       string
	LoginPath         string

	// Draft persistence
	DraftStore string
	RedisURL   string
	DraftTTL   time.Duration

	GameweekCacheSize int
	GameweekCacheTTL  time.Duration

	WorkspaceIdleTTL time.Duration
	SweepInterval    time.Duration
	WorkerCount      int
	WorkerQueueSize  int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:      strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, "dev"),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		TrustedProxies: getEnvAsList(EnvTrustedProxies, ""),

		BackendAPIURL:     strings.TrimRight(getEnv(EnvBackendAPIURL, ""), "/"),
		BackendAPIKey:     getEnv(EnvBackendAPIKey, ""),
		BackendMaxRetries: getEnvAsInt(EnvBackendRetries, DefaultBackendRetries),
		BackendGetTimeout: getEnvAsDuration(EnvBackendGetTO, DefaultBackendGetTO),

		JWTSecret:    getEnv(EnvJWTSecret, ""),
		JWTPublicKey: getEnv(EnvJWTPublicKey, ""),
		JWTIssuer:    getEnv(EnvJWTIssuer, ""),
		JWTAudience:  getEnv(EnvJWTAudience, ""),

		BuyInPresets:      getEnvAsList(EnvBuyInPresets, DefaultBuyInPresets),
		SuccessCloseDelay: getEnvAsDuration(EnvSuccessDelay, DefaultSuccessDelay),
		FatalCloseDelay:   getEnvAsDuration(EnvFatalDelay, DefaultFatalDelay),
		ResultsPath:       getEnv(EnvResultsPath, DefaultResultsPath),
		LoginPath:         getEnv(EnvLoginPath, DefaultLoginPath),

		DraftStore: strings.ToLower(getEnv(EnvDraftStore, DefaultDraftStore)),
		RedisURL:   getEnv(EnvRedisURL, ""),
		DraftTTL:   getEnvAsDuration(EnvDraftTTL, DefaultDraftTTL),

		GameweekCacheSize: getEnvAsInt(EnvGameweekCacheSz, DefaultGameweekCacheSz),
		GameweekCacheTTL:  getEnvAsDuration(EnvGameweekCacheTTL, DefaultGameweekCacheTTL),

		WorkspaceIdleTTL: getEnvAsDuration(EnvWorkspaceIdleTTL, DefaultWorkspaceIdleTTL),
		SweepInterval:    getEnvAsDuration(EnvSweepInterval, DefaultSweepInterval),
		WorkerCount:      getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize:  getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),
	}

	portStr := getEnv(EnvPort, strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values Load cannot default
func (c *Config) Validate() error {
	if c.BackendAPIURL == "" {
		return fmt.Errorf("%s environment variable must be set", EnvBackendAPIURL)
	}
	if c.JWTSecret == "" && c.JWTPublicKey == "" {
		return fmt.Errorf("either %s or %s must be set for token verification", EnvJWTSecret, EnvJWTPublicKey)
	}
	if c.JWTSecret != "" && c.JWTPublicKey != "" {
		return fmt.Errorf("%s and %s are mutually exclusive", EnvJWTSecret, EnvJWTPublicKey)
	}
	switch c.DraftStore {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			return fmt.Errorf("%s must be set when %s=redis", EnvRedisURL, EnvDraftStore)
		}
	default:
		return fmt.Errorf("invalid %s value %q (want memory or redis)", EnvDraftStore, c.DraftStore)
	}
	if len(c.BuyInPresets) == 0 {
		return fmt.Errorf("%s must list at least one amount", EnvBuyInPresets)
	}
	return nil
}

// IsDevelopment reports whether the service runs in a local environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the default when the variable is unset or unparseable
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping blanks
func getEnvAsList(key, defaultValue string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, defaultValue), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
