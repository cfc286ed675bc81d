package config

import (
	"fmt"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds runtime settings for the ChefTube CLI.
type Config struct {
	DatabaseDriver          string
	DatabaseDSN             string
	SecretKey               string
	SessionValidityDuration time.Duration
	RecipeSource            string
	S3RootUser              string
	S3RootPassword          string
	S3Bucket                string
	S3Region                string
	S3BaseEndpoint          string
	LogLevel                string
	LogFormat               string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key must be overridden outside of development.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = DriverSQLite
	c.DatabaseDSN = "cheftube.db"
	c.SecretKey = "secretKey"
	c.SessionValidityDuration = 30 * 24 * time.Hour
	c.RecipeSource = ""
	c.S3RootUser = ""
	c.S3RootPassword = ""
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = ""
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("database DSN is empty")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is empty")
	}
	if c.SessionValidityDuration <= 0 {
		return fmt.Errorf("session validity must be positive, got %s", c.SessionValidityDuration)
	}
	return nil
}

// S3Enabled reports whether recipe images live in an S3 bucket.
func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// LoadConfig applies defaults, then the optional JSON file and finally the
// command-line flags found in args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
