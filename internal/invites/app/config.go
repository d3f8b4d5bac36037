package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	BootstrapToken string // Optional: token required to perform bootstrap

	JWTSecret string // Required: HMAC secret shared with the CRM backend that signs session tokens
	JWTIssuer string // Optional: expected issuer claim (default: comodin-crm)

	BaseURL string // Optional: public frontend URL used in redemption links (default: http://localhost:3000)

	DatabaseFile string // Optional: path to SQLite database file (default: ./invites.db)

	SMTPHost     string // Optional: SMTP relay host; when empty the dev mailer writes previews instead of sending
	SMTPPort     int    // Optional: SMTP port (default: 587)
	SMTPUsername string // Optional: SMTP auth username
	SMTPPassword string // Optional: SMTP auth password
	SMTPFrom     string // Optional: sender address (default: no-reply@comodinia.com)
	SMTPFromName string // Optional: sender display name (default: COMODIN IA)

	InviteTTL time.Duration // Optional: invitation validity window (default: 168h)

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expiry sweep interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		BootstrapToken: os.Getenv("BOOTSTRAP_TOKEN"),

		JWTSecret: os.Getenv("INVITES_JWT_SECRET"),
		JWTIssuer: getEnvOrDefault("INVITES_JWT_ISSUER", "comodin-crm"),

		BaseURL: getEnvOrDefault("INVITES_BASE_URL", "http://localhost:3000"),

		DatabaseFile: getEnvOrDefault("INVITES_DATABASE_FILE", "invites.db"),

		SMTPHost:     os.Getenv("INVITES_SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("INVITES_SMTP_PORT", 587),
		SMTPUsername: os.Getenv("INVITES_SMTP_USERNAME"),
		SMTPPassword: os.Getenv("INVITES_SMTP_PASSWORD"),
		SMTPFrom:     getEnvOrDefault("INVITES_SMTP_FROM", "no-reply@comodinia.com"),
		SMTPFromName: getEnvOrDefault("INVITES_SMTP_FROM_NAME", "COMODIN IA"),

		InviteTTL: getEnvDurationOrDefault("INVITES_INVITE_TTL", 7*24*time.Hour),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Parse as duration (e.g., "1h", "30m", "168h")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Fall back to integer hours for plain numbers
	if hours, err := strconv.Atoi(value); err == nil {
		return time.Duration(hours) * time.Hour
	}

	return defaultValue
}
