package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	Port         string
	GinMode      string
	JWTSecret    string
	UploadDir    string
	AllowOrigins []string
	OpenAIAPIKey string
}

func Load() *Config {
	// Optional .env for local development; deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "3306"),
		DBUser:       getEnv("DB_USER", "pulseuser"),
		DBPassword:   getEnv("DB_PASSWORD", "pulsepassword"),
		DBName:       getEnv("DB_NAME", "vickhardth_ops"),
		Port:         getEnv("PORT", "5000"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		JWTSecret:    getEnv("JWT_SECRET", "vickhardth-site-pulse-secret"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		AllowOrigins: splitEnv("CORS_ORIGINS", "http://localhost:5173"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func splitEnv(key, defaultValue string) []string {
	parts := strings.Split(getEnv(key, defaultValue), ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
