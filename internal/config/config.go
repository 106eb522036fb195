package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "pgx"
	DriverMySQL    = "mysql"
)

type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
	DBAutoMigrate     bool

	ServerPort string
	LogLevel   string
}

// NewConfig reads the process environment. A .env file in the working
// directory is loaded first when present; variables already set win.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		DBDriver:   getEnvOrDefault("DATABASE_DRIVER", DriverPostgres),
		DBHost:     getEnvOrDefault("DATABASE_HOST", "localhost"),
		DBPort:     getEnvOrDefault("DATABASE_PORT", "5432"),
		DBUser:     getEnvOrDefault("DATABASE_USER", "postgres"),
		DBPassword: getEnvOrDefault("DATABASE_PASSWORD", "password"),
		DBName:     getEnvOrDefault("DATABASE_NAME", "appplantes2"),

		ServerPort: getEnvOrDefault("SERVER_PORT", getEnvOrDefault("PORT", "8080")),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverMySQL {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DBDriver)
	}

	var err error
	if cfg.DBMaxOpenConns, err = getEnvInt("DB_MAX_OPEN_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.DBMaxIdleConns, err = getEnvInt("DB_MAX_IDLE_CONNS", 5); err != nil {
		return nil, err
	}
	if cfg.DBConnMaxLifetime, err = getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute); err != nil {
		return nil, err
	}
	if cfg.DBAutoMigrate, err = getEnvBool("DB_AUTO_MIGRATE", false); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnvOrDefault(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func (c *Config) DSN() string {
	if c.DBDriver == DriverMySQL {
		mc := mysql.NewConfig()
		mc.User = c.DBUser
		mc.Passwd = c.DBPassword
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(c.DBHost, c.DBPort)
		mc.DBName = c.DBName
		mc.ParseTime = true
		// UPDATE reports matched rows, not changed rows, like postgres does.
		mc.ClientFoundRows = true
		return mc.FormatDSN()
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}
