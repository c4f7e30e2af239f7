package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/n4en/dil2deal/utils"
)

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Port       string
	Env        string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// A missing .env file is fine in deployed environments; real env vars win
	if err := godotenv.Load(); err != nil {
		utils.LogDebug("No .env file found, using environment variables")
	}

	config := &Config{
		DBHost:     getEnv("DB_HOST", utils.DefaultDBHost),
		DBPort:     getEnv("DB_PORT", utils.DefaultDBPort),
		DBUser:     getEnv("DB_USER", utils.DefaultDBUser),
		DBPassword: getEnv("DB_PASSWORD", utils.DefaultDBPassword),
		DBName:     getEnv("DB_NAME", utils.DefaultDBName),
		Port:       getEnv("PORT", utils.DefaultPort),
		Env:        getEnv("ENV", "development"),
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
