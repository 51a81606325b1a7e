package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Auth    AuthConfig
	Catalog CatalogConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type AuthConfig struct {
	JWTSecret        string
	AccessTokenHours int
	RefreshTokenDays int
	InteractionTopic string
}

type CatalogConfig struct {
	Seed int64
	// SimulatedLatencyMs is the fixed part of the fake ingest delay; a random
	// component of the same magnitude is added on top. Zero disables it.
	SimulatedLatencyMs int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Auth: AuthConfig{
			JWTSecret:        getEnv("JWT_SECRET", "default_secret"),
			AccessTokenHours: getEnvAsInt("ACCESS_TOKEN_HOURS", 24),
			RefreshTokenDays: getEnvAsInt("REFRESH_TOKEN_DAYS", 30),
			InteractionTopic: getEnv("CONTENT_INTERACTION_TOPIC_NAME", "CONTENT_INTERACTION"),
		},
		Catalog: CatalogConfig{
			Seed:               getEnvAsInt64("CATALOG_SEED", 42),
			SimulatedLatencyMs: getEnvAsInt("SIMULATED_LATENCY_MS", 0),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseInt(strValue, 10, 64); err == nil {
		return value
	}
	return fallback
}
