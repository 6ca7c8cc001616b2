package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config collects every environment-driven setting. A missing .env file is
// not an error; deployment environments set real variables.
type Config struct {
	Addr        string
	DatabaseURL string
	SQLitePath  string
	RedisURL    string
	SecretKey   string
	SessionTTL  time.Duration

	SendGridAPIKey string
	MailSenderName string
	MailSenderAddr string

	AuthRateLimit float64
	AuthRateBurst int
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Addr:        GetEnvAsString("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  GetEnvAsString("SQLITE_PATH", "app.db"),
		RedisURL:    os.Getenv("REDIS_URL"),
		SecretKey:   GetEnvAsString("SECRET_KEY", "dev-secret-key"),
		SessionTTL:  GetEnvAsDuration("SESSION_TTL", 24*time.Hour),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailSenderName: GetEnvAsString("MAIL_SENDER_NAME", "Docledger"),
		MailSenderAddr: GetEnvAsString("MAIL_SENDER_ADDR", "no-reply@docledger.local"),

		AuthRateLimit: GetEnvAsFloat("AUTH_RATE_LIMIT", 5),
		AuthRateBurst: GetEnvAsInt("AUTH_RATE_BURST", 10),
	}
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsFloat gets environment variable as float64 with default value
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
