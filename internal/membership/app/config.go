package app

import (
	"os"
	"strconv"
	"time"

	"github.com/lubana/membership/pkg/httpx"
)

const (
	StoreDriverSQLite    = "sqlite"
	StoreDriverFirestore = "firestore"
)

type Config struct {
	Issuer         string        // Optional: issuer claim for tokens (default: lubana-membership)
	SigningKeyFile string        // Optional: path to the Ed25519 signing key, created when missing (default: ./signing.pem)
	AccessTTL      time.Duration // Optional: access token lifetime (default: 12h)
	PepperFile     string        // Optional: path to file containing pepper for password hashing (default: ./pepper)

	StoreDriver         string // Optional: sqlite or firestore (default: sqlite)
	DatabaseFile        string // Optional: path to SQLite database file (default: ./membership.db)
	FirestoreProjectID  string // Required for the firestore driver
	FirebaseCredentials string // Optional: service account key for the firestore driver

	AdminUsername string // Optional: bootstrap admin created when there are no users
	AdminPassword string

	MetricsUser string // Optional: basic auth user guarding /metrics
	MetricsPass string

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	ReconcileInterval   time.Duration // Reconciler interval (default: 1h)

	RateLimits httpx.RateLimits
}

func LoadConfig() Config {
	return Config{
		Issuer:         getEnvOrDefault("AUTH_ISSUER", "lubana-membership"),
		SigningKeyFile: getEnvOrDefault("AUTH_SIGNING_KEY_FILE", "signing.pem"),
		AccessTTL:      getEnvDurationOrDefault("ACCESS_TOKEN_TTL", 12*time.Hour),
		PepperFile:     getEnvOrDefault("PEPPER_FILE", "pepper"),

		StoreDriver:         getEnvOrDefault("STORE_DRIVER", StoreDriverSQLite),
		DatabaseFile:        getEnvOrDefault("DATABASE_FILE", "membership.db"),
		FirestoreProjectID:  os.Getenv("FIRESTORE_PROJECT_ID"),
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS_FILE"),

		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		MetricsUser: os.Getenv("METRICS_USER"),
		MetricsPass: os.Getenv("METRICS_PASS"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		ReconcileInterval:   getEnvDurationOrDefault("RECONCILE_INTERVAL", 1*time.Hour),

		RateLimits: httpx.RateLimitsFromEnv(os.Getenv),
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
