package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Settings holds the environment-driven application configuration.
type Settings struct {
	Addr          string
	SessionSecret string

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
}

// Load reads .env (if present) and resolves all application settings
// with their defaults.
func Load() Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Settings{
		Addr:              getEnv("ADDR", ":8080"),
		SessionSecret:     getEnv("SESSION_SECRET", "dev-secret-change"),
		AdminUsername:     getEnv("ADMIN_USERNAME", "Admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "Admin"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
