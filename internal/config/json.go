package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/cheftube/internal/flagx"
	"github.com/dmitrijs2005/cheftube/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Only keys that
// are present in the file override the current values.
type JsonConfig struct {
	DatabaseDriver          *string         `json:"database_driver"`
	DatabaseDSN             *string         `json:"database_dsn"`
	SecretKey               *string         `json:"secret_key"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	RecipeSource            *string         `json:"recipe_source"`
	S3RootUser              *string         `json:"s3_root_user"`
	S3RootPassword          *string         `json:"s3_root_password"`
	S3Bucket                *string         `json:"s3_bucket"`
	S3Region                *string         `json:"s3_region"`
	S3BaseEndpoint          *string         `json:"s3_base_endpoint"`
	LogLevel                *string         `json:"log_level"`
	LogFormat               *string         `json:"log_format"`
}

// parseJson overlays values from the file named by -c/-config, if any.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	setString(&config.RecipeSource, c.RecipeSource)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.LogFormat, c.LogFormat)
	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
