package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port             string
	MongoURI         string
	DatabaseName     string
	CORSOrigins      string
	LogLevel         string
	ReminderInterval time.Duration
	ReminderHours    int
}

func Load() Config {
	return Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGODB_URI", "mongodb://localhost:27017/"),
		DatabaseName:     getEnv("DATABASE_NAME", "tasktracker"),
		CORSOrigins:      getEnv("CORS_ORIGINS", "*"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ReminderInterval: getDuration("REMINDER_INTERVAL", 15*time.Minute),
		ReminderHours:    getInt("REMINDER_HOURS", 24),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
