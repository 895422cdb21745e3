package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	FrontendURL string
	DBPath      string

	// Booking rules
	Timezone        string
	OpenHour        int
	CloseHour       int
	SlotIntervalMin int
	Capacity        int

	// Admin access
	AdminKey  string
	JWTSecret string

	// Notification
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	SMTPFrom    string
	NotifyEmail string

	// AI recommendation
	GeminiAPIKey string
}

func Load() *Config {
	_ = godotenv.Load()
	_ = godotenv.Load(".env.local")

	return &Config{
		ServerPort:  getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3333"),
		DBPath:      getEnv("DB_PATH", "data/bookings.sqlite"),

		Timezone:        getEnv("BOOKING_TZ", "Europe/Berlin"),
		OpenHour:        getEnvInt("OPEN_HOUR", 10),
		CloseHour:       getEnvInt("CLOSE_HOUR", 20),
		SlotIntervalMin: getEnvInt("SLOT_INTERVAL_MIN", 15),
		Capacity:        getEnvInt("CAPACITY", 2),

		AdminKey:  getEnv("ADMIN_KEY", ""),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),

		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnvInt("SMTP_PORT", 587),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASS", ""),
		SMTPFrom:    getEnv("SMTP_FROM", ""),
		NotifyEmail: getEnv("NOTIFY_EMAIL", "bookings@f1rst-wash.de"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
