package cfg

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type AmadeusConfig struct {
	BaseURL        string
	ClientID       string
	ClientSecret   string
	TimeoutSeconds int
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ObservabilityConfig struct {
	OTLPEndpoint string
	ServiceName  string
	Environment  string
}

type Config struct {
	AppEnv             string
	AppPort            string
	Redis              RedisConfig
	Amadeus            AmadeusConfig
	Postgres           PostgresConfig
	Observability      ObservabilityConfig
	CacheTTLMinutes    int
	SessionTTLMinutes  int
	SnowflakeNodeID    int64
	CORSAllowedOrigins []string
}

func Load() (*Config, error) {
	// A missing .env is fine: containers inject real env vars.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("failed load cfg: " + err.Error())
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	var errs []error

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)

	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := os.Getenv("REDIS_PASSWORD")

	amadeusBaseURL := mustEnv("AMADEUS_BASE_URL", &errs)
	amadeusClientID := mustEnv("AMADEUS_CLIENT_ID", &errs)
	amadeusClientSecret := mustEnv("AMADEUS_CLIENT_SECRET", &errs)
	upstreamTimeout := mustInt("UPSTREAM_TIMEOUT_SECONDS", &errs)

	pgHost := mustEnv("POSTGRES_HOST", &errs)
	pgPort := mustEnv("POSTGRES_PORT", &errs)
	pgUser := mustEnv("POSTGRES_USER", &errs)
	pgPassword := mustEnv("POSTGRES_PASSWORD", &errs)
	pgDB := mustEnv("POSTGRES_DB", &errs)
	pgSSLMode := os.Getenv("POSTGRES_SSLMODE")

	otlpEndpoint := mustEnv("OTLP_ENDPOINT", &errs)
	serviceName := mustEnv("SERVICE_NAME", &errs)

	cacheTTLMinutes := mustInt("CACHE_TTL_MINUTES", &errs)
	sessionTTLMinutes := mustInt("SESSION_TTL_MINUTES", &errs)
	nodeID := mustInt("SNOWFLAKE_NODE_ID", &errs)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		Redis: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		Amadeus: AmadeusConfig{
			BaseURL:        strings.TrimRight(amadeusBaseURL, "/"),
			ClientID:       amadeusClientID,
			ClientSecret:   amadeusClientSecret,
			TimeoutSeconds: upstreamTimeout,
		},
		Postgres: PostgresConfig{
			Host:     pgHost,
			Port:     pgPort,
			User:     pgUser,
			Password: pgPassword,
			DBName:   pgDB,
			SSLMode:  pgSSLMode,
		},
		Observability: ObservabilityConfig{
			OTLPEndpoint: otlpEndpoint,
			ServiceName:  serviceName,
			Environment:  appEnv,
		},
		CacheTTLMinutes:    cacheTTLMinutes,
		SessionTTLMinutes:  sessionTTLMinutes,
		SnowflakeNodeID:    int64(nodeID),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), "*"),
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}

func mustInt(key string, errs *[]error) int {
	raw := mustEnv(key, errs)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, errors.New("conversion failed env: "+key))
	}
	return n
}

func splitList(raw, fallback string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{fallback}
	}
	return out
}
