// Package config loads runtime configuration for the ChefTube CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config (see parseJson).
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-n string   database driver: sqlite or postgres
//	-d string   database DSN
//	-k string   secret used to sign saved sessions
//	-t int      saved session validity, hours
//	-r string   recipe catalog source: empty (built-in), a file path or s3://bucket/key
//	-u string   S3 access key
//	-p string   S3 secret key
//	-b string   S3 bucket holding recipe images
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-l string   log level: debug, info, warn, error
//	-f string   log format: text or json
//
// # JSON schema
//
// Durations use timex.Duration, so "720h" and integer nanoseconds both work:
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "cheftube.db",
//	  "session_validity_duration": "720h",
//	  "recipe_source": "s3://cheftube/recipes.json"
//	}
package config
