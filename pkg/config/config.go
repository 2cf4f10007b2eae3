package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	DBMaxConns    int32
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	// External ML service (career plan, gap analysis)
	MLBaseURL     string
	MLTimeout     time.Duration
	LegacyURL     string
	LegacyTimeout time.Duration
	CacheTTL      time.Duration
	RedisURL      string
	UploadDir     string
	LogLevel      string
	CORSOrigins   string

	LinkedinFetchTimeout time.Duration
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBMaxConns:    int32(getEnvInt("DB_MAX_CONNS", 10)),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "synapse"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 60),

		MLBaseURL:     strings.TrimRight(getEnv("ML_API_BASE_URL", "http://127.0.0.1:18081/ml/api/v1"), "/"),
		MLTimeout:     time.Duration(getEnvInt("ML_TIMEOUT_SECONDS", 20)) * time.Second,
		LegacyURL:     strings.TrimRight(getEnv("LEGACY_API_URL", "http://127.0.0.1:8000"), "/"),
		LegacyTimeout: time.Duration(getEnvInt("LEGACY_TIMEOUT_SECONDS", 30)) * time.Second,
		CacheTTL:      time.Duration(getEnvInt("CACHE_TTL_MINUTES", 10)) * time.Minute,
		RedisURL:      os.Getenv("REDIS_URL"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),

		LinkedinFetchTimeout: time.Duration(getEnvInt("LINKEDIN_FETCH_TIMEOUT_SECONDS", 8)) * time.Second,
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
