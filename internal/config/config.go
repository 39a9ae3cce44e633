package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	SMTP      SMTPConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Verify    VerifyConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SMTPConfig holds mail delivery configuration
type SMTPConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	FrontendURL string
}

// SecurityConfig holds encryption keys
type SecurityConfig struct {
	SessionEncryptionKey string
	DataEncryptionKey    string
}

// RateLimitConfig holds token bucket settings. The verify endpoint gets
// its own, stricter bucket.
type RateLimitConfig struct {
	APIRequests    int
	APIInterval    time.Duration
	VerifyRequests int
	VerifyInterval time.Duration
}

// VerifyConfig holds verification pipeline settings
type VerifyConfig struct {
	TokenExpiry    time.Duration
	AttemptTimeout time.Duration
	WorkerCount    int
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "7879"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "verifyme"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		SMTP: SMTPConfig{
			Host:        getEnv("SMTP_HOST", "localhost"),
			Port:        getEnvAsInt("SMTP_PORT", 2525),
			User:        getEnv("SMTP_USER", ""),
			Password:    getEnv("SMTP_PASSWORD", ""),
			From:        getEnv("MAIL_FROM", "noreply@verify.me"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
			DataEncryptionKey:    getEnv("DATA_ENCRYPTION_KEY", "change-this-data-key"),
		},
		RateLimit: RateLimitConfig{
			APIRequests:    getEnvAsInt("RATE_LIMIT_API_REQUESTS", 100),
			APIInterval:    getEnvAsDuration("RATE_LIMIT_API_INTERVAL", 15*time.Minute),
			VerifyRequests: getEnvAsInt("RATE_LIMIT_VERIFY_REQUESTS", 50),
			VerifyInterval: getEnvAsDuration("RATE_LIMIT_VERIFY_INTERVAL", time.Hour),
		},
		Verify: VerifyConfig{
			TokenExpiry:    getEnvAsDuration("VERIFICATION_TOKEN_EXPIRY", 24*time.Hour),
			AttemptTimeout: getEnvAsDuration("VERIFY_ATTEMPT_TIMEOUT", 10*time.Second),
			WorkerCount:    getEnvAsInt("VERIFY_WORKER_COUNT", 4),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
