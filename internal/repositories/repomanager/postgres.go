package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cheftube/internal/dbx"
	"github.com/dmitrijs2005/cheftube/internal/migrations"
	"github.com/dmitrijs2005/cheftube/internal/repositories/favourites"
	"github.com/dmitrijs2005/cheftube/internal/repositories/preferences"
	"github.com/dmitrijs2005/cheftube/internal/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Preferences returns a preferences.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Preferences(db dbx.DBTX) preferences.Repository {
	return preferences.NewPostgresRepository(db)
}

// Favourites returns a favourites.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Favourites(db dbx.DBTX) favourites.Repository {
	return favourites.NewPostgresRepository(db)
}

// RunMigrations applies the embedded postgres migrations.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, "pgx", migrations.PostgresDir)
}
