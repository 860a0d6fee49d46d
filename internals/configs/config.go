package configs

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
)

// AppConfig holds every runtime setting read from the environment.
type AppConfig struct {
	Port string

	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	CorsAllowOrigins []string

	// Search stays dark until the query behaviour is confirmed.
	StudentSearchEnabled bool

	BlacklistCleanupCron string
}

var App AppConfig

// =======================
// ENV LOADER
// =======================
func LoadEnv() AppConfig {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			level.Warn(Logger).Log("msg", ".env file not found, using system environment")
		} else {
			level.Info(Logger).Log("msg", ".env file loaded")
		}
	} else {
		level.Info(Logger).Log("msg", "running on Railway, using system environment")
	}

	App = AppConfig{
		Port: GetEnv("PORT", "8080"),

		DBHost:        GetEnv("DB_HOST", "localhost"),
		DBPort:        GetEnv("DB_PORT", "5432"),
		DBUser:        GetEnv("DB_USER", "postgres"),
		DBPassword:    GetEnv("DB_PASSWORD"),
		DBName:        GetEnv("DB_NAME", "sgm"),
		DBSSLMode:     GetEnv("DB_SSLMODE", "disable"),
		DBAutoMigrate: GetEnvBool("DB_AUTOMIGRATE", true),

		JWTSecret: GetEnv("JWT_SECRET"),
		JWTTTL:    time.Duration(GetEnvInt("JWT_TTL_HOURS", 10)) * time.Hour,

		AdminEmail:    GetEnv("ADMIN_EMAIL", "admin@sgm.com"),
		AdminPassword: GetEnv("ADMIN_PASSWORD", "admin123"),

		CorsAllowOrigins: splitList(GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),

		StudentSearchEnabled: GetEnvBool("STUDENT_SEARCH_ENABLED", false),

		BlacklistCleanupCron: GetEnv("BLACKLIST_CLEANUP_CRON", "@every 1h"),
	}

	if App.JWTSecret != "" {
		level.Info(Logger).Log("msg", "JWT_SECRET loaded")
	}

	return App
}

// Validate reports settings the server cannot start without.
func (c AppConfig) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if strings.TrimSpace(c.AdminEmail) == "" || c.AdminPassword == "" {
		return errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	return nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
