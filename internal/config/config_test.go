package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{
		"DATABASE_DRIVER", "DATABASE_HOST", "DATABASE_PORT", "DATABASE_NAME", "DATABASE_USER", "DATABASE_PASSWORD",
		"SERVER_PORT", "PORT", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_AUTO_MIGRATE",
		"LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, 5, cfg.DBMaxIdleConns)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	assert.False(t, cfg.DBAutoMigrate)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=password dbname=appplantes2 sslmode=disable",
		cfg.DSN())
}

func TestNewConfig_PortFallback(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "3000")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.ServerPort)
}

func TestNewConfig_MySQLDSN(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DATABASE_HOST", "db")
	t.Setenv("DATABASE_PORT", "3306")
	t.Setenv("DATABASE_USER", "test")
	t.Setenv("DATABASE_PASSWORD", "test")
	t.Setenv("DATABASE_NAME", "appplantes2")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "test:test@tcp(db:3306)/appplantes2?clientFoundRows=true&parseTime=true", cfg.DSN())
}

func TestNewConfig_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("DATABASE_DRIVER", "sqlite")
	_, err := NewConfig()
	assert.Error(t, err)

	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	_, err = NewConfig()
	assert.Error(t, err)

	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DB_AUTO_MIGRATE", "perhaps")
	_, err = NewConfig()
	assert.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores the previous one when the test ends.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
