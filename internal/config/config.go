package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI   string
	DBName     string
	RedisAddr  string
	AdminToken string
	CartTTL    time.Duration
	Port       string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:   getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		DBName:     getEnvOrDefault("DB_NAME", "chocoshop"),
		RedisAddr:  getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		AdminToken: getEnvOrDefault("ADMIN_TOKEN", "admin123"),
		CartTTL:    getDurationEnv("CART_TTL_MINUTES", 60*24, time.Minute),
		Port:       getEnvOrDefault("PORT", "8080"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
