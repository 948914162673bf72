package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI         string
	MongoDBName      string
	RedisURL         string
	ServerPort       string
	AuthServiceURL   string
	NotifiServiceURL string
	AllowedOrigins   []string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := &Config{
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:      getEnv("MONGO_DBNAME", "utsav"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		ServerPort:       getEnv("SERVER_PORT", ":8000"),
		AuthServiceURL:   getEnv("AUTH_SERVICE_URL", "http://localhost:8081"),
		NotifiServiceURL: getEnv("NOTIFI_SERVICE_URL", "http://localhost:8084"),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
