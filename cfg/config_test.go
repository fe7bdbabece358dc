package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	env := map[string]string{
		"APP_ENV":                  "development",
		"APP_PORT":                 "8080",
		"REDIS_HOST":               "localhost",
		"REDIS_PORT":               "6379",
		"AMADEUS_BASE_URL":         "https://test.api.amadeus.com/",
		"AMADEUS_CLIENT_ID":        "id",
		"AMADEUS_CLIENT_SECRET":    "secret",
		"UPSTREAM_TIMEOUT_SECONDS": "5",
		"POSTGRES_HOST":            "localhost",
		"POSTGRES_PORT":            "5432",
		"POSTGRES_USER":            "travel",
		"POSTGRES_PASSWORD":        "travel",
		"POSTGRES_DB":              "travel",
		"OTLP_ENDPOINT":            "localhost:4317",
		"SERVICE_NAME":             "travel",
		"CACHE_TTL_MINUTES":        "15",
		"SESSION_TTL_MINUTES":      "1440",
		"SNOWFLAKE_NODE_ID":        "3",
	}
	for k, v := range env {
		t.Setenv(k, v)
	}
}

func TestFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://skysearch.example ,")

	c, err := fromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, "https://test.api.amadeus.com", c.Amadeus.BaseURL)
	assert.Equal(t, 5, c.Amadeus.TimeoutSeconds)
	assert.Equal(t, 15, c.CacheTTLMinutes)
	assert.Equal(t, 1440, c.SessionTTLMinutes)
	assert.Equal(t, int64(3), c.SnowflakeNodeID)
	assert.Equal(t, "development", c.Observability.Environment)
	assert.Equal(t, []string{"http://localhost:5173", "https://skysearch.example"}, c.CORSAllowedOrigins)
}

func TestFromEnv_DefaultCORS(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	c, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, c.CORSAllowedOrigins)
}

func TestFromEnv_CollectsAllErrors(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "")
	t.Setenv("CACHE_TTL_MINUTES", "fifteen")

	_, err := fromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing env: APP_PORT")
	assert.Contains(t, err.Error(), "conversion failed env: CACHE_TTL_MINUTES")
}
