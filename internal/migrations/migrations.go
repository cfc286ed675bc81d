// Package migrations embeds the goose SQL migrations for every supported
// database dialect. Each dialect lives in its own sub-directory.
package migrations

import "embed"

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

const (
	SQLiteDir   = "sqlite"
	PostgresDir = "postgres"
)
