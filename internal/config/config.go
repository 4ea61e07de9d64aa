package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store drivers
const (
	StoreDriverMongo  = "mongo"
	StoreDriverSQLite = "sqlite"
	StoreDriverMemory = "memory"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// Store configuration
	StoreDriver string `json:"store_driver"`
	SQLitePath  string `json:"sqlite_path"`

	// MongoDB configuration
	MongoURI      string `json:"mongo_uri"`
	MongoDatabase string `json:"mongo_database"`

	// Collection names
	BeneficiaryCollection string `json:"mongo_beneficiary_collection"`
	ActivityCollection    string `json:"mongo_activity_collection"`
	AuditLogsCollection   string `json:"mongo_audit_logs_collection"`

	// Redis configuration
	RedisURI      string `json:"redis_uri"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`

	// Session configuration
	SessionTTL        time.Duration `json:"session_ttl"`
	SessionSecret     string        `json:"-"`
	AdminEmail        string        `json:"admin_email"`
	AdminPasswordHash string        `json:"-"`

	// Geocoding configuration
	GeocodingURL       string        `json:"geocoding_url"`
	GeocodingUserAgent string        `json:"geocoding_user_agent"`
	GeocodingTimeout   time.Duration `json:"geocoding_timeout"`
	GeocodingCacheTTL  time.Duration `json:"geocoding_cache_ttl"`
	GeocodingDebounce  time.Duration `json:"geocoding_debounce"`

	// Domain configuration
	DefaultRegion         string        `json:"default_region"`
	PublicRefreshInterval time.Duration `json:"public_refresh_interval"`
	NotificationFeedSize  int           `json:"notification_feed_size"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`

	// Audit configuration
	AuditWorkers    int `json:"audit_workers"`
	AuditBufferSize int `json:"audit_buffer_size"`
}

var (
	AppConfig *Config
)

const developmentSessionSecret = "development-only-session-secret"

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	sessionTTL, err := time.ParseDuration(getEnvOrDefault("SESSION_TTL", "12h"))
	if err != nil {
		return fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	environment := getEnvOrDefault("ENVIRONMENT", "development")

	storeDriver := strings.ToLower(getEnvOrDefault("STORE_DRIVER", StoreDriverMongo))
	switch storeDriver {
	case StoreDriverMongo, StoreDriverSQLite, StoreDriverMemory:
	default:
		return fmt.Errorf("invalid STORE_DRIVER: %s", storeDriver)
	}

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		if environment == "production" {
			return fmt.Errorf("SESSION_SECRET environment variable is required in production")
		}
		sessionSecret = developmentSessionSecret
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: environment,

		// Store configuration
		StoreDriver: storeDriver,
		SQLitePath:  getEnvOrDefault("SQLITE_PATH", "data/adulto-mayor.db"),

		// MongoDB configuration
		MongoURI:      getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGODB_DATABASE", "adulto_mayor"),

		// Collection names
		BeneficiaryCollection: getEnvOrDefault("MONGODB_BENEFICIARY_COLLECTION", "beneficiaries"),
		ActivityCollection:    getEnvOrDefault("MONGODB_ACTIVITY_COLLECTION", "activities"),
		AuditLogsCollection:   getEnvOrDefault("MONGODB_AUDIT_LOGS_COLLECTION", "audit_logs"),

		// Redis configuration
		RedisURI:      getEnvOrDefault("REDIS_URI", "localhost:6379"),
		RedisPassword: getEnvOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		// Session configuration
		SessionTTL:        sessionTTL,
		SessionSecret:     sessionSecret,
		AdminEmail:        getEnvOrDefault("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnvOrDefault("ADMIN_PASSWORD_HASH", ""),

		// Geocoding configuration
		GeocodingURL:       getEnvOrDefault("GEOCODING_URL", "https://nominatim.openstreetmap.org"),
		GeocodingUserAgent: getEnvOrDefault("GEOCODING_USER_AGENT", "app-adulto-mayor/1.0"),
		GeocodingTimeout:   getEnvAsDurationOrDefault("GEOCODING_TIMEOUT", 5*time.Second),
		GeocodingCacheTTL:  getEnvAsDurationOrDefault("GEOCODING_CACHE_TTL", 24*time.Hour),
		GeocodingDebounce:  getEnvAsDurationOrDefault("GEOCODING_DEBOUNCE", 500*time.Millisecond),

		// Domain configuration
		DefaultRegion:         strings.ToUpper(getEnvOrDefault("DEFAULT_REGION", "VE")),
		PublicRefreshInterval: getEnvAsDurationOrDefault("PUBLIC_REFRESH_INTERVAL", time.Minute),
		NotificationFeedSize:  getEnvAsIntOrDefault("NOTIFICATION_FEED_SIZE", 50),

		// Tracing configuration
		TracingEnabled:  getEnvAsBoolOrDefault("TRACING_ENABLED", false),
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),

		// Audit configuration
		AuditWorkers:    getEnvAsIntOrDefault("AUDIT_WORKERS", 2),
		AuditBufferSize: getEnvAsIntOrDefault("AUDIT_BUFFER_SIZE", 1000),
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns an integer environment variable or the default
// when unset or unparseable
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDurationOrDefault returns a duration environment variable or the
// default when unset or unparseable
func getEnvAsDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsBoolOrDefault returns a boolean environment variable or the default
// when unset or unparseable
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
