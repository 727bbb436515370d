package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort         string
	DataFile        string
	StaticDir       string
	TelegramToken   string
	TelegramChatID  string
	ZaloAccessToken string
	ZaloUserID      string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	OrderEmailTo    string
	EmailFrom       string
}

// Load reads environment variables and returns a populated Config.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:         getEnv("APP_PORT", "3000"),
		DataFile:        getEnv("DATA_FILE", "server/data.json"),
		StaticDir:       getEnv("STATIC_DIR", ".."),
		TelegramToken:   getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:  getEnv("TELEGRAM_CHAT_ID", ""),
		ZaloAccessToken: getEnv("ZALO_ACCESS_TOKEN", ""),
		ZaloUserID:      getEnv("ZALO_USER_ID", ""),
		SMTPHost:        getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:        getEnvInt("SMTP_PORT", 587),
		SMTPUser:        getEnv("SMTP_USER", ""),
		SMTPPass:        getEnv("SMTP_PASS", ""),
		OrderEmailTo:    getEnv("ORDER_EMAIL_TO", ""),
		EmailFrom:       getEnv("EMAIL_FROM", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
