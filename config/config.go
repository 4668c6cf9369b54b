package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv                string
	AppPort               string
	DatabaseURL           string
	SessionSecret         string
	SessionTTLHours       int
	WebhookTimeoutSeconds int
	NatsURL               string
	AllowedOrigins        string
	DBMaxIdleConns        int
	DBMaxOpenConns        int
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

// NormalizeDatabaseURL rewrites the legacy postgres:// scheme to postgresql://.
// Some hosting providers hand out connection strings with the short prefix.
func NormalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return "postgresql://" + strings.TrimPrefix(url, "postgres://")
	}
	return url
}

func Load() Config {
	log.Println("Loading configuration...")

	return Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		AppPort:               getEnv("APP_PORT", "8080"),
		DatabaseURL:           NormalizeDatabaseURL(getEnv("DATABASE_URL", "")),
		SessionSecret:         getEnv("SESSION_SECRET", "dev-session-secret-change-this-in-production"),
		SessionTTLHours:       getEnvAsInt("SESSION_TTL_HOURS", 168),
		WebhookTimeoutSeconds: getEnvAsInt("WEBHOOK_TIMEOUT_SECONDS", 10),
		NatsURL:               getEnv("NATS_URL", ""),
		AllowedOrigins:        getEnv("ALLOWED_ORIGINS", "*"),
		DBMaxIdleConns:        getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns:        getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
	}
}
