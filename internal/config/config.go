package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DBDriver    string
	MySQLDSN    string
	SQLitePath  string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	SwaggerHost string
	SeedURL     string
	ResetDB     bool

	// AuthDelay is the pause applied before signup and login respond.
	AuthDelay          time.Duration
	LoginMaxAttempts   int
	LoginAttemptWindow time.Duration
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DBDriver:           getEnv("DB_DRIVER", "mysql"),
		MySQLDSN:           mysqlDSN(),
		SQLitePath:         getEnv("SQLITE_PATH", "petgram.db"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
		SeedURL:            os.Getenv("SEED_URL"),
		ResetDB:            os.Getenv("RESET_DB") == "true",
		AuthDelay:          getEnvDuration("AUTH_DELAY", time.Second),
		LoginMaxAttempts:   getEnvInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginAttemptWindow: getEnvDuration("LOGIN_ATTEMPT_WINDOW", 15*time.Minute),
	}
}

// mysqlDSN prefers MYSQL_DSN and otherwise assembles one from the
// DB_USER, DB_PASSWD, DB_HOST and DB_NAME credentials.
func mysqlDSN() string {
	if dsn := os.Getenv("MYSQL_DSN"); dsn != "" {
		return dsn
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "user"),
		getEnv("DB_PASSWD", "password"),
		getEnv("DB_HOST", "localhost:3306"),
		getEnv("DB_NAME", "petgram"),
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
