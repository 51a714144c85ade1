package config

import (
	"errors"
	"os"
	"strconv"
)

const defaultSessionSecret = "default-secret-key-change-me"

type Config struct {
	Port                  string
	GinMode               string
	DBDriver              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSSLMode             string
	SQLitePath            string
	RedisHost             string
	RedisPort             string
	SessionStore          string
	SessionSecret         string
	SessionRememberMaxAge int // seconds
	SessionBrowserTTL     int // seconds a browser-session login is kept server side
	SessionSecure         bool
	PageSize              int
	MediaRoot             string
	AdminUsername         string
	AdminPassword         string
}

func Load() *Config {
	return &Config{
		Port:                  getEnv("PORT", "8080"),
		GinMode:               getEnv("GIN_MODE", "debug"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite"),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "3306"),
		DBUser:                getEnv("DB_USER", "staffuser"),
		DBPassword:            getEnv("DB_PASSWORD", "staffpassword"),
		DBName:                getEnv("DB_NAME", "work_nest"),
		DBSSLMode:             getEnv("DB_SSLMODE", "disable"),
		SQLitePath:            getEnv("SQLITE_PATH", "work_nest.db"),
		RedisHost:             getEnv("REDIS_HOST", "localhost"),
		RedisPort:             getEnv("REDIS_PORT", "6379"),
		SessionStore:          getEnv("SESSION_STORE", "cookie"),
		SessionSecret:         getEnv("SESSION_SECRET", defaultSessionSecret),
		SessionRememberMaxAge: getEnvInt("SESSION_REMEMBER_MAX_AGE", 14*86400),
		SessionBrowserTTL:     getEnvInt("SESSION_BROWSER_TTL", 86400),
		SessionSecure:         getEnvBool("SESSION_SECURE", false),
		PageSize:              getEnvInt("PAGE_SIZE", 10),
		MediaRoot:             getEnv("MEDIA_ROOT", "./media"),
		AdminUsername:         getEnv("ADMIN_USERNAME", ""),
		AdminPassword:         getEnv("ADMIN_PASSWORD", ""),
	}
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func (c *Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres", "mysql":
	default:
		return errors.New("DB_DRIVER must be one of sqlite, postgres, mysql")
	}
	switch c.SessionStore {
	case "cookie", "redis":
	default:
		return errors.New("SESSION_STORE must be cookie or redis")
	}
	if c.IsProduction() && c.SessionSecret == defaultSessionSecret {
		return errors.New("SESSION_SECRET must be changed in release mode")
	}
	if c.PageSize <= 0 {
		return errors.New("PAGE_SIZE must be positive")
	}
	if c.SessionRememberMaxAge <= 0 {
		return errors.New("SESSION_REMEMBER_MAX_AGE must be positive")
	}
	if c.SessionBrowserTTL <= 0 {
		return errors.New("SESSION_BROWSER_TTL must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
