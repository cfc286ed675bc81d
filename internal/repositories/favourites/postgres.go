package favourites

import (
	"context"
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

func (r *PostgresRepository) Add(ctx context.Context, userID, recipeID string) error {
	query :=
		`INSERT INTO user_favourites (user_id, recipe_id) VALUES ($1, $2)
		 ON CONFLICT (user_id, recipe_id) DO NOTHING
		 `

	if _, err := r.db.ExecContext(ctx, query, userID, recipeID); err != nil {
		return fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return nil
}

func (r *PostgresRepository) Remove(ctx context.Context, userID, recipeID string) error {
	query := `DELETE FROM user_favourites WHERE user_id = $1 AND recipe_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, recipeID); err != nil {
		return fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return nil
}

func (r *PostgresRepository) Has(ctx context.Context, userID, recipeID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM user_favourites WHERE user_id = $1 AND recipe_id = $2)`

	var found bool
	if err := r.db.QueryRowContext(ctx, query, userID, recipeID).Scan(&found); err != nil {
		return false, fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return found, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT recipe_id FROM user_favourites WHERE user_id = $1 ORDER BY recipe_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return scanIDs(rows)
}

func (r *PostgresRepository) Count(ctx context.Context, recipeID string) (int, error) {
	query := `SELECT COUNT(*) FROM user_favourites WHERE recipe_id = $1`

	var n int
	if err := r.db.QueryRowContext(ctx, query, recipeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return n, nil
}

func (r *PostgresRepository) Clear(ctx context.Context, userID string) error {
	query := `DELETE FROM user_favourites WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w: %w", common.ErrorStorage, err)
	}
	return nil
}
