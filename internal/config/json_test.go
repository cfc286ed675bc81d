package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads all keys", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"database_driver":           "postgres",
			"database_dsn":              "postgres://db",
			"secret_key":                "k",
			"session_validity_duration": "48h",
			"recipe_source":             "recipes.json",
			"s3_root_user":              "user",
			"s3_root_password":          "password",
			"s3_bucket":                 "bucket",
			"s3_region":                 "region",
			"s3_base_endpoint":          "http://endpoint",
			"log_level":                 "warn",
			"log_format":                "json",
		})

		cfg := &Config{}
		require.NoError(t, parseJson(cfg, []string{"-config", path}))

		assert.Equal(t, "postgres", cfg.DatabaseDriver)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, "k", cfg.SecretKey)
		assert.Equal(t, 48*time.Hour, cfg.SessionValidityDuration)
		assert.Equal(t, "recipes.json", cfg.RecipeSource)
		assert.Equal(t, "user", cfg.S3RootUser)
		assert.Equal(t, "password", cfg.S3RootPassword)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "region", cfg.S3Region)
		assert.Equal(t, "http://endpoint", cfg.S3BaseEndpoint)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("missing keys keep current values", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"log_level": "debug"})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg, []string{"-c", path}))

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
		assert.Equal(t, 720*time.Hour, cfg.SessionValidityDuration)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		cfg := &Config{DatabaseDSN: "keep.db"}
		require.NoError(t, parseJson(cfg, []string{"-d", "other.db"}))
		assert.Equal(t, "keep.db", cfg.DatabaseDSN)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ not json`), 0o600))

		err := parseJson(&Config{}, []string{"-c", bad})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})

	t.Run("missing file", func(t *testing.T) {
		err := parseJson(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})
}
