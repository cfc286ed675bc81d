package preferences

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return value, nil
}

func (r *PostgresRepository) Set(ctx context.Context, key string, value []byte) error {
	query :=
		`INSERT INTO preferences (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		 `

	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = $1`, key); err != nil {
		return fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return nil
}

func (r *PostgresRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM preferences`); err != nil {
		return fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM preferences`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return scanPairs(rows)
}
