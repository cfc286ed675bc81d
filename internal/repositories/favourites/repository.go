// Package favourites stores which catalog recipes each user marked as a
// favourite. Recipes live in the catalog, so only their ids are kept.
package favourites

import "context"

// Repository manages (user, recipe) favourite pairs. Add and Remove are
// idempotent.
type Repository interface {
	Add(ctx context.Context, userID, recipeID string) error
	Remove(ctx context.Context, userID, recipeID string) error
	Has(ctx context.Context, userID, recipeID string) (bool, error)
	// List returns the user's recipe ids ordered by id.
	List(ctx context.Context, userID string) ([]string, error)
	// Count returns how many users marked recipeID.
	Count(ctx context.Context, recipeID string) (int, error)
	Clear(ctx context.Context, userID string) error
}
