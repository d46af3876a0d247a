package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing version", map[string]string{}, "ENV_SCHEMA_VERSION is not set"},
		{"version mismatch", map[string]string{EnvSchemaVersion: "0.9"}, "expected 1.0, got 0.9"},
		{"missing required", map[string]string{EnvSchemaVersion: ExpectedEnvSchemaVersion}, "missing required environment variables"},
		{"missing key only", map[string]string{EnvSchemaVersion: ExpectedEnvSchemaVersion, EnvBackendAPIURL: "https://api"}, "JWT_SECRET or JWT_PUBLIC_KEY"},
		{"complete", map[string]string{EnvSchemaVersion: ExpectedEnvSchemaVersion, EnvBackendAPIURL: "https://api", EnvJWTPublicKey: "pem"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(EnvSchemaVersion, "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := ValidateEnv()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateEnvWithWarnings(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvBackendAPIURL, "http://api.internal")
	t.Setenv(EnvJWTSecret, "short")
	t.Setenv(EnvEnvironment, "production")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 3)

	t.Setenv(EnvJWTSecret, "")
	_, err = ValidateEnvWithWarnings()
	assert.Error(t, err)
}
