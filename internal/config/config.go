package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds all runtime configuration. Required values cause a
// fatal error when missing; the rest fall back to sensible defaults.
type Config struct {
	Port            string
	DatabaseURL     string
	JWTSecretKey    string
	JWTIssuer       string
	JWTAudience     string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	BcryptCost      int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
}

func Load() *Config {
	return &Config{
		Port:            GetEnvAsString("APP_PORT", "8080"),
		DatabaseURL:     must("DATABASE_URL"),
		JWTSecretKey:    must("JWT_SECRET_KEY"),
		JWTIssuer:       GetEnvAsString("JWT_ISSUER", "identity-service"),
		JWTAudience:     GetEnvAsString("JWT_AUDIENCE", "identity-service"),
		AccessTokenTTL:  time.Duration(GetEnvAsInt("ACCESS_TOKEN_TTL_MIN", 15)) * time.Minute,
		RefreshTokenTTL: time.Duration(GetEnvAsInt("REFRESH_TOKEN_TTL_DAYS", 14)) * 24 * time.Hour,
		BcryptCost:      GetEnvAsInt("BCRYPT_COST", bcrypt.DefaultCost),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         GetEnvAsInt("REDIS_DB", 0),
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

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}
