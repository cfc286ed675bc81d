package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cheftube/internal/dbx"
	"github.com/dmitrijs2005/cheftube/internal/migrations"
	"github.com/dmitrijs2005/cheftube/internal/repositories/favourites"
	"github.com/dmitrijs2005/cheftube/internal/repositories/preferences"
	"github.com/dmitrijs2005/cheftube/internal/repositories/users"
	_ "modernc.org/sqlite"
)

// SQLiteRepositoryManager vends SQLite-backed repositories.
type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Preferences(db dbx.DBTX) preferences.Repository {
	return preferences.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Favourites(db dbx.DBTX) favourites.Repository {
	return favourites.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return migrate(ctx, db, "sqlite3", migrations.SQLiteDir)
}
