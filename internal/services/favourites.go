package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/cheftube/internal/logging"
	"github.com/dmitrijs2005/cheftube/internal/models"
	"github.com/dmitrijs2005/cheftube/internal/repositories/repomanager"
)

type recipeLookup interface {
	Get(id string) (models.Recipe, error)
}

// FavouriteService keeps per-user favourite recipes. Recipe ids are checked
// against the catalog before they are stored.
type FavouriteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	recipes     recipeLookup
	log         logging.Logger
}

func NewFavouriteService(db *sql.DB, m repomanager.RepositoryManager, recipes recipeLookup, log logging.Logger) *FavouriteService {
	return &FavouriteService{
		db:          db,
		repomanager: m,
		recipes:     recipes,
		log:         log.With("component", "favourite_service"),
	}
}

// SetFavourite marks or unmarks recipeID for userID. Both directions are
// idempotent. An unknown recipe yields common.ErrorNotFound.
func (s *FavouriteService) SetFavourite(ctx context.Context, userID, recipeID string, fav bool) error {
	if _, err := s.recipes.Get(recipeID); err != nil {
		return err
	}

	repo := s.repomanager.Favourites(s.db)
	op, apply := "add_favourite", repo.Add
	if !fav {
		op, apply = "remove_favourite", repo.Remove
	}

	if err := apply(ctx, userID, recipeID); err != nil {
		s.log.Error(ctx, "favourite update failed", "op", op, "user_id", userID, "recipe_id", recipeID, "error", err)
		return err
	}
	return nil
}

// Favourites returns the user's favourite recipe ids, never nil.
func (s *FavouriteService) Favourites(ctx context.Context, userID string) ([]string, error) {
	return s.repomanager.Favourites(s.db).List(ctx, userID)
}

func (s *FavouriteService) IsFavourite(ctx context.Context, userID, recipeID string) (bool, error) {
	return s.repomanager.Favourites(s.db).Has(ctx, userID, recipeID)
}

// Count returns how many accounts marked recipeID.
func (s *FavouriteService) Count(ctx context.Context, recipeID string) (int, error) {
	return s.repomanager.Favourites(s.db).Count(ctx, recipeID)
}
