package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     string
	DBURL    string
	RedisURL string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string

	AccessExpiryMin   int
	RefreshExpiryDays int

	LoginMaxAttempts int
	AttemptWindowMin int
	IPBlockMin       int

	LowStockThreshold int
}

func Load() *Config {
	env := getEnv("ENV", "development")

	// Optional per-environment overrides; real env vars win.
	_ = godotenv.Load("config/.env." + env)

	return &Config{
		Env:               env,
		Port:              getEnv("PORT", "8080"),
		DBURL:             mustGetEnv("DB_URL"),
		RedisURL:          getEnv("REDIS_URL", ""),
		JWTSecret:         mustGetEnv("JWT_SECRET"),
		JWTIssuer:         getEnv("JWT_ISSUER", "erp-company-system"),
		JWTAudience:       getEnv("JWT_AUDIENCE", "erp-clients"),
		AccessExpiryMin:   getEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 60),
		RefreshExpiryDays: getEnvAsInt("REFRESH_TOKEN_EXPIRY_DAYS", 7),
		LoginMaxAttempts:  getEnvAsInt("LOGIN_MAX_ATTEMPTS", 5),
		AttemptWindowMin:  getEnvAsInt("LOGIN_ATTEMPT_WINDOW_MINUTES", 15),
		IPBlockMin:        getEnvAsInt("IP_BLOCK_MINUTES", 15),
		LowStockThreshold: getEnvAsInt("LOW_STOCK_THRESHOLD", 10),
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required environment variable: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
