package config

import (
	"os"

	"github.com/joho/godotenv"
)

func init() {
	// .env is optional, real deployments set the environment directly
	godotenv.Load()
}

func Config(key string) string {
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func IsProduction() bool {
	return Config("APP_ENV") == "production"
}
