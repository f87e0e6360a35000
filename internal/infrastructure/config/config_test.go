package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env vars and restore after tests
	originalEnv := map[string]string{
		"SHOPWORKS_APP_NAME":                os.Getenv("SHOPWORKS_APP_NAME"),
		"SHOPWORKS_APP_ENV":                 os.Getenv("SHOPWORKS_APP_ENV"),
		"SHOPWORKS_APP_PORT":                os.Getenv("SHOPWORKS_APP_PORT"),
		"SHOPWORKS_DATABASE_HOST":           os.Getenv("SHOPWORKS_DATABASE_HOST"),
		"SHOPWORKS_DATABASE_PORT":           os.Getenv("SHOPWORKS_DATABASE_PORT"),
		"SHOPWORKS_DATABASE_USER":           os.Getenv("SHOPWORKS_DATABASE_USER"),
		"SHOPWORKS_DATABASE_PASSWORD":       os.Getenv("SHOPWORKS_DATABASE_PASSWORD"),
		"SHOPWORKS_DATABASE_DBNAME":         os.Getenv("SHOPWORKS_DATABASE_DBNAME"),
		"SHOPWORKS_DATABASE_SSLMODE":        os.Getenv("SHOPWORKS_DATABASE_SSLMODE"),
		"SHOPWORKS_DATABASE_MAX_OPEN_CONNS": os.Getenv("SHOPWORKS_DATABASE_MAX_OPEN_CONNS"),
		"SHOPWORKS_DATABASE_MAX_IDLE_CONNS": os.Getenv("SHOPWORKS_DATABASE_MAX_IDLE_CONNS"),
		"SHOPWORKS_JWT_SECRET":              os.Getenv("SHOPWORKS_JWT_SECRET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "shopworks-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "", cfg.Database.Password)
		assert.Equal(t, "shopworks", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.False(t, cfg.Redis.Enabled)
	})

	t.Run("loads values from environment variables with SHOPWORKS prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("SHOPWORKS_APP_NAME", "test-app")
		os.Setenv("SHOPWORKS_APP_ENV", "testing")
		os.Setenv("SHOPWORKS_APP_PORT", "9000")
		os.Setenv("SHOPWORKS_DATABASE_HOST", "testdb.local")
		os.Setenv("SHOPWORKS_DATABASE_PORT", "5433")
		os.Setenv("SHOPWORKS_DATABASE_USER", "testuser")
		os.Setenv("SHOPWORKS_DATABASE_PASSWORD", "testpass")
		os.Setenv("SHOPWORKS_DATABASE_DBNAME", "testdb")
		os.Setenv("SHOPWORKS_DATABASE_SSLMODE", "require")
		os.Setenv("SHOPWORKS_DATABASE_MAX_OPEN_CONNS", "50")
		os.Setenv("SHOPWORKS_DATABASE_MAX_IDLE_CONNS", "10")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "testing", cfg.App.Env)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testuser", cfg.Database.User)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "testdb", cfg.Database.DBName)
		assert.Equal(t, "require", cfg.Database.SSLMode)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		clearEnv()
		os.Setenv("SHOPWORKS_DATABASE_MAX_OPEN_CONNS", "10")
		os.Setenv("SHOPWORKS_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns")
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("zero MaxOpenConns uses default", func(t *testing.T) {
		clearEnv()
		os.Setenv("SHOPWORKS_DATABASE_MAX_OPEN_CONNS", "0")

		cfg, err := Load()
		require.NoError(t, err)
		// 0 is treated as "not set", so the default applies
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		clearEnv()
		os.Setenv("SHOPWORKS_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})
}

func TestLoad_ProductionValidation(t *testing.T) {
	originalEnv := map[string]string{
		"SHOPWORKS_APP_ENV":           os.Getenv("SHOPWORKS_APP_ENV"),
		"SHOPWORKS_JWT_SECRET":        os.Getenv("SHOPWORKS_JWT_SECRET"),
		"SHOPWORKS_DATABASE_PASSWORD": os.Getenv("SHOPWORKS_DATABASE_PASSWORD"),
		"SHOPWORKS_DATABASE_SSLMODE":  os.Getenv("SHOPWORKS_DATABASE_SSLMODE"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("production requires jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("SHOPWORKS_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret is required")
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("SHOPWORKS_APP_ENV", "production")
		os.Setenv("SHOPWORKS_JWT_SECRET", "short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 32 characters")
	})

	t.Run("production requires database password and ssl", func(t *testing.T) {
		clearEnv()
		os.Setenv("SHOPWORKS_APP_ENV", "production")
		os.Setenv("SHOPWORKS_JWT_SECRET", "0123456789abcdef0123456789abcdef")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required")

		os.Setenv("SHOPWORKS_DATABASE_PASSWORD", "secret")
		_, err = Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sslmode")
	})

	t.Run("valid production config passes", func(t *testing.T) {
		clearEnv()
		os.Setenv("SHOPWORKS_APP_ENV", "production")
		os.Setenv("SHOPWORKS_JWT_SECRET", "0123456789abcdef0123456789abcdef")
		os.Setenv("SHOPWORKS_DATABASE_PASSWORD", "secret")
		os.Setenv("SHOPWORKS_DATABASE_SSLMODE", "require")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "shop",
		Password: "p@ss/word",
		DBName:   "shopworks",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.local:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", r.Addr())
}
