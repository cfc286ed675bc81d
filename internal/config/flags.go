package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/cheftube/internal/flagx"
)

var knownFlags = []string{"-n", "-d", "-k", "-t", "-r", "-u", "-p", "-b", "-g", "-e", "-l", "-f"}

// parseFlags overlays values from command-line flags. Unknown arguments are
// filtered out first so other flag sets (such as -c) do not collide.
// The session validity is given in whole hours and only replaces the
// current value when -t is actually present.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("cheftube", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.DatabaseDriver, "n", config.DatabaseDriver, "database driver (sqlite|postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "k", config.SecretKey, "session signing key")
	sessionHours := fs.Int("t", int(config.SessionValidityDuration.Hours()), "saved session validity (in hours)")
	fs.StringVar(&config.RecipeSource, "r", config.RecipeSource, "recipe catalog source")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 access key")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 secret key")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (text|json)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionValidityDuration = time.Duration(*sessionHours) * time.Hour
		}
	})
	return nil
}
