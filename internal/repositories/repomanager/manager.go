// Package repomanager vends dialect-specific repositories bound to a DBTX
// and runs the embedded goose migrations for that dialect.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/config"
	"github.com/dmitrijs2005/cheftube/internal/dbx"
	"github.com/dmitrijs2005/cheftube/internal/filex"
	"github.com/dmitrijs2005/cheftube/internal/migrations"
	"github.com/dmitrijs2005/cheftube/internal/repositories/favourites"
	"github.com/dmitrijs2005/cheftube/internal/repositories/preferences"
	"github.com/dmitrijs2005/cheftube/internal/repositories/users"
	"github.com/pressly/goose/v3"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Preferences(db dbx.DBTX) preferences.Repository
	Favourites(db dbx.DBTX) favourites.Repository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlOpen is a seam for testing sql.Open.
var sqlOpen = sql.Open

func migrate(ctx context.Context, db *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect %s: %w", dialect, err)
	}
	if err := gooseUpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrate: %w: %w", common.ErrorStorage, err)
	}
	return nil
}

// New returns the manager for the given driver name.
func New(driver string) (RepositoryManager, error) {
	switch driver {
	case config.DriverSQLite:
		return NewSQLiteRepositoryManager(), nil
	case config.DriverPostgres:
		return NewPostgresRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// Open connects to the configured database, applies migrations and returns
// the connection together with the matching manager. The caller owns db.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, RepositoryManager, error) {
	m, err := New(cfg.DatabaseDriver)
	if err != nil {
		return nil, nil, err
	}

	sqlDriver := "sqlite"
	if cfg.DatabaseDriver == config.DriverPostgres {
		sqlDriver = "pgx"
	} else if isSQLiteFile(cfg.DatabaseDSN) {
		if _, err := filex.EnsureParentDir(cfg.DatabaseDSN); err != nil {
			return nil, nil, fmt.Errorf("open database: %w: %w", common.ErrorStorage, err)
		}
	}

	db, err := sqlOpen(sqlDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w: %w", common.ErrorStorage, err)
	}
	if cfg.DatabaseDriver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return db, m, nil
}

// isSQLiteFile reports whether dsn is a plain file path rather than an
// in-memory database or a file: URI.
func isSQLiteFile(dsn string) bool {
	return dsn != ":memory:" && !strings.HasPrefix(dsn, "file:")
}
