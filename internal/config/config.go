package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Identity provider (sessions are issued there, we only verify)
	JWTSecret       string
	IdentityBaseURL string
	IdentityAPIKey  string
	IdentityTimeout time.Duration

	// Admin
	AdminUserIDs string
	AdminToken   string

	// Map defaults (Hat Yai city center)
	MapCenterLat float64
	MapCenterLng float64

	// Server
	Port        string
	CORSOrigins string

	// Job category catalog
	CategoriesPath string
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "hatyai_restart"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:       getEnv("JWT_SECRET", ""),
		IdentityBaseURL: getEnv("IDENTITY_BASE_URL", ""),
		IdentityAPIKey:  getEnv("IDENTITY_API_KEY", ""),
		IdentityTimeout: parseDuration(getEnv("IDENTITY_TIMEOUT", "10s")),

		AdminUserIDs: getEnv("ADMIN_USER_IDS", ""),
		AdminToken:   getEnv("ADMIN_TOKEN", ""),

		MapCenterLat: parseFloat(getEnv("MAP_CENTER_LAT", "7.0086"), 7.0086),
		MapCenterLng: parseFloat(getEnv("MAP_CENTER_LNG", "100.4747"), 100.4747),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		CategoriesPath: getEnv("CATEGORIES_PATH", "job_categories.json"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

func parseFloat(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}
