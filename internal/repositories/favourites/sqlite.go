package favourites

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, userID, recipeID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO user_favourites (user_id, recipe_id) VALUES (?, ?)
		ON CONFLICT(user_id, recipe_id) DO NOTHING
	`, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to add favourite[%s]: %w: %w", recipeID, common.ErrorStorage, err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, userID, recipeID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM user_favourites WHERE user_id = ? AND recipe_id = ?`, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove favourite[%s]: %w: %w", recipeID, common.ErrorStorage, err)
	}
	return nil
}

func (r *SQLiteRepository) Has(ctx context.Context, userID, recipeID string) (bool, error) {
	var found bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_favourites WHERE user_id = ? AND recipe_id = ?)`,
		userID, recipeID).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("failed to check favourite[%s]: %w: %w", recipeID, common.ErrorStorage, err)
	}
	return found, nil
}

func (r *SQLiteRepository) List(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT recipe_id FROM user_favourites WHERE user_id = ? ORDER BY recipe_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favourites: %w: %w", common.ErrorStorage, err)
	}
	return scanIDs(rows)
}

func (r *SQLiteRepository) Count(ctx context.Context, recipeID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_favourites WHERE recipe_id = ?`, recipeID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count favourite[%s]: %w: %w", recipeID, common.ErrorStorage, err)
	}
	return n, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_favourites WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("failed to clear favourites: %w: %w", common.ErrorStorage, err)
	}
	return nil
}

func scanIDs(rows *sql.Rows) ([]string, error) {
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favourite row: %w: %w", common.ErrorStorage, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favourite rows: %w: %w", common.ErrorStorage, err)
	}

	return ids, nil
}
