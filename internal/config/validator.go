package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvBackendAPIURL,
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if os.Getenv(EnvJWTSecret) == "" && os.Getenv(EnvJWTPublicKey) == "" {
		missing = append(missing, EnvJWTSecret+" or "+EnvJWTPublicKey)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using example values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if secret := os.Getenv(EnvJWTSecret); secret != "" && len(secret) < 32 {
		warnings = append(warnings, "JWT_SECRET is shorter than 32 bytes - prefer an RSA public key (JWT_PUBLIC_KEY) or a longer secret")
	}

	if os.Getenv(EnvBackendAPIKey) == "" {
		warnings = append(warnings, "BACKEND_API_KEY is empty - backend calls will carry only the user's bearer token")
	}

	if strings.HasPrefix(os.Getenv(EnvBackendAPIURL), "http://") && os.Getenv(EnvEnvironment) == "production" {
		warnings = append(warnings, "BACKEND_API_URL uses plain http in production")
	}

	return warnings, nil
}
