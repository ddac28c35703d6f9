package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Phone      PhoneConfig
	Twilio     TwilioConfig
	Push       PushConfig
	Cloudinary CloudinaryConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type PhoneConfig struct {
	DefaultCountryCode string
}

type TwilioConfig struct {
	AccountSID          string
	AuthToken           string
	WhatsAppNumber      string
	ContentSID          string
	MessagingServiceSID string
	BaseURL             string
}

type PushConfig struct {
	URL string
}

type CloudinaryConfig struct {
	URL    string
	Folder string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "syana_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "change-this-secret-in-production"),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		},
		Phone: PhoneConfig{
			DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "+971"),
		},
		Twilio: TwilioConfig{
			AccountSID:          getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:           getEnv("TWILIO_AUTH_TOKEN", ""),
			WhatsAppNumber:      getEnv("TWILIO_WHATSAPP_PHONE_NUMBER", ""),
			ContentSID:          getEnv("TWILIO_CONTENT_SID", ""),
			MessagingServiceSID: getEnv("TWILIO_MESSAGING_SERVICE_SID", ""),
			BaseURL:             getEnv("TWILIO_BASE_URL", "https://api.twilio.com"),
		},
		Push: PushConfig{
			URL: getEnv("PUSH_API_URL", "https://exp.host/--/api/v2/push/send"),
		},
		Cloudinary: CloudinaryConfig{
			URL:    getEnv("CLOUDINARY_URL", ""),
			Folder: getEnv("CLOUDINARY_FOLDER", "syana/attachments"),
		},
	}
}

// DSN builds the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
