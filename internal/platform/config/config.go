package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr          string
	Environment   string
	JWTSecret     string
	TokenTTL      time.Duration
	DatasetSeed   int64
	SeedEmployees int
	SeedPassword  string
	LogRequests   bool
}

// Load reads configuration from the environment, after folding in a .env
// file when one exists next to the binary.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:          getEnv("APP_ADDR", ":7140"),
		Environment:   getEnv("APP_ENV", "development"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-only-secret"),
		TokenTTL:      getEnvDuration("TOKEN_TTL", 8*time.Hour),
		DatasetSeed:   int64(getEnvInt("DATASET_SEED", 1)),
		SeedEmployees: getEnvInt("SEED_EMPLOYEES", 50),
		SeedPassword:  getEnv("SEED_PASSWORD", "ChangeMe123!"),
		LogRequests:   getEnvBool("LOG_REQUESTS", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
