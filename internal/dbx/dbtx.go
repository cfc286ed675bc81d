// Package dbx holds the small database abstractions shared by repositories:
// the DBTX interface satisfied by both *sql.DB and *sql.Tx, and WithTx, which
// runs a unit of work inside a transaction.
package dbx

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/cheftube/internal/common"
)

// DBTX is the subset of database/sql used by repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with it and commits when fn returns
// nil. Any error from fn, or a panic, rolls the transaction back; panics are
// rethrown. Failures to begin or commit are reported as common.ErrorStorage.
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    return repomanager.Users(tx).Update(ctx, user)
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w: %w", common.ErrorStorage, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		if cerr := tx.Commit(); cerr != nil {
			err = fmt.Errorf("commit tx: %w: %w", common.ErrorStorage, cerr)
		}
	}()

	return fn(ctx, tx)
}
