// Package catalog holds the recipe catalog. It is loaded once at startup,
// never changes afterwards and is handed to whoever needs it.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/dmitrijs2005/cheftube/internal/common"
	"github.com/dmitrijs2005/cheftube/internal/models"
)

//go:embed recipes.json
var defaultRecipes []byte

// SearchParams combines optional criteria; every non-empty criterion must
// match. Text criteria are case-insensitive substrings. A zero
// MaxDuration means no upper bound. A non-nil IDs restricts the result to
// those recipes, so an empty non-nil IDs matches nothing.
type SearchParams struct {
	Title       string
	Ingredient  string
	Category    string
	MinDuration int
	MaxDuration int
	Difficulty  int
	IDs         []string
}

// AnyRecipe matches the whole catalog; refine it field by field.
var AnyRecipe = SearchParams{Difficulty: models.DifficultyAny}

type imageSigner interface {
	presign(ctx context.Context, key string) (string, error)
}

type Catalog struct {
	recipes []models.Recipe
	byID    map[string]int
	images  imageSigner
}

// New checks recipes and builds a catalog from a private copy of them.
func New(recipes []models.Recipe) (*Catalog, error) {
	c := &Catalog{
		recipes: make([]models.Recipe, 0, len(recipes)),
		byID:    make(map[string]int, len(recipes)),
	}

	for i, r := range recipes {
		if r.ID == "" {
			return nil, fmt.Errorf("recipe #%d: empty id", i)
		}
		if _, dup := c.byID[r.ID]; dup {
			return nil, fmt.Errorf("recipe %s: duplicate id", r.ID)
		}
		if r.Difficulty < models.DifficultyEasy || r.Difficulty > models.DifficultyHard {
			return nil, fmt.Errorf("recipe %s: difficulty %d out of range", r.ID, r.Difficulty)
		}
		if r.DurationMinutes < 0 {
			return nil, fmt.Errorf("recipe %s: negative duration", r.ID)
		}
		c.byID[r.ID] = len(c.recipes)
		c.recipes = append(c.recipes, clone(r))
	}

	return c, nil
}

// Parse decodes a JSON array of recipes.
func Parse(r io.Reader) ([]models.Recipe, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var recipes []models.Recipe
	if err := dec.Decode(&recipes); err != nil {
		return nil, fmt.Errorf("decode recipes: %w", err)
	}
	return recipes, nil
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	recipes, err := Parse(bytes.NewReader(defaultRecipes))
	if err != nil {
		return nil, err
	}
	return New(recipes)
}

func (c *Catalog) Len() int { return len(c.recipes) }

// All returns every recipe in catalog order.
func (c *Catalog) All() []models.Recipe {
	out := make([]models.Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = clone(r)
	}
	return out
}

func (c *Catalog) Get(id string) (models.Recipe, error) {
	i, ok := c.byID[id]
	if !ok {
		return models.Recipe{}, fmt.Errorf("recipe %s: %w", id, common.ErrorNotFound)
	}
	return clone(c.recipes[i]), nil
}

// Search returns the recipes matching p in catalog order.
func (c *Catalog) Search(p SearchParams) []models.Recipe {
	var out []models.Recipe
	for _, r := range c.recipes {
		if p.matches(r) {
			out = append(out, clone(r))
		}
	}
	return out
}

// ImageURL resolves a recipe image for display. Absolute URLs are returned
// as they are; object keys are presigned when a bucket is configured and
// returned unchanged otherwise.
func (c *Catalog) ImageURL(ctx context.Context, r models.Recipe) (string, error) {
	if r.Image == "" || isAbsoluteURL(r.Image) || c.images == nil {
		return r.Image, nil
	}
	return c.images.presign(ctx, r.Image)
}

func (p SearchParams) matches(r models.Recipe) bool {
	if p.IDs != nil && !slices.Contains(p.IDs, r.ID) {
		return false
	}
	if p.Title != "" && !containsFold(r.Title, p.Title) {
		return false
	}
	if p.Ingredient != "" && !slices.ContainsFunc(r.Ingredients, func(s string) bool { return containsFold(s, p.Ingredient) }) {
		return false
	}
	if p.Category != "" && !slices.ContainsFunc(r.Categories, func(s string) bool { return containsFold(s, p.Category) }) {
		return false
	}
	if r.DurationMinutes < p.MinDuration {
		return false
	}
	if p.MaxDuration > 0 && r.DurationMinutes > p.MaxDuration {
		return false
	}
	if p.Difficulty != models.DifficultyAny && r.Difficulty != p.Difficulty {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func clone(r models.Recipe) models.Recipe {
	r.Ingredients = slices.Clone(r.Ingredients)
	r.Steps = slices.Clone(r.Steps)
	r.Categories = slices.Clone(r.Categories)
	return r
}
