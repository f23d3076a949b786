package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	Environment string
	BaseURL     string

	FirestoreProject string
	StorageBucket    string

	JWTSecret           string
	JWTExpiry           int64
	ResetExpiry         int64
	ProtectedAdminEmail string

	RedisAddr     string
	RedisPassword string
	CartTTLHours  int64

	RabbitMQURL        string
	RabbitMQEmailQueue string

	MailgunDomain  string
	MailgunAPIKey  string
	MailgunSender  string
	MailSenderName string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),

		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		StorageBucket:    getEnv("STORAGE_BUCKET", ""),

		JWTSecret:           getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:           getEnvAsInt64("JWT_EXPIRY", 24*60*60),  // 24 hours
		ResetExpiry:         getEnvAsInt64("RESET_EXPIRY", 3*60*60), // 3 hours
		ProtectedAdminEmail: getEnv("PROTECTED_ADMIN_EMAIL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		CartTTLHours:  getEnvAsInt64("CART_TTL_HOURS", 72),

		RabbitMQURL:        getEnv("RABBITMQ_URL", ""),
		RabbitMQEmailQueue: getEnv("RABBITMQ_EMAIL_QUEUE", "emails"),

		MailgunDomain:  getEnv("MAILGUN_DOMAIN", ""),
		MailgunAPIKey:  getEnv("MAILGUN_API_KEY", ""),
		MailgunSender:  getEnv("MAILGUN_SENDER", ""),
		MailSenderName: getEnv("MAIL_SENDER_NAME", "Reptile Shop"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
