package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/cheftube/internal/catalog"
	"github.com/dmitrijs2005/cheftube/internal/models"
)

var errUsage = errors.New("usage")

const searchUsage = "Usage: search [favourites] title|ingredient|category <text> | duration <min> <max> | difficulty easy|medium|hard"

// Recipes lists the whole catalog.
func (a *App) Recipes(ctx context.Context) error {
	a.printRecipes(a.catalog.All())
	return nil
}

// Search filters the catalog by a single criterion given in args. A leading
// "favourites" limits the result to the user's favourites, and alone lists
// them all.
func (a *App) Search(ctx context.Context, args []string) error {
	onlyFavs := len(args) > 0 && strings.EqualFold(args[0], "favourites")
	if onlyFavs {
		args = args[1:]
	}

	p := catalog.AnyRecipe
	if !onlyFavs || len(args) > 0 {
		var err error
		if p, err = parseSearch(args); err != nil {
			fmt.Fprintln(a.out, searchUsage)
			return err
		}
	}

	if onlyFavs {
		ids, err := a.favs.Favourites(ctx, a.user.ID)
		if err != nil {
			report(a.out, err)
			return err
		}
		if ids == nil {
			ids = []string{}
		}
		p.IDs = ids
	}

	a.printRecipes(a.catalog.Search(p))
	return nil
}

// Show prints the recipe details, including its image and video links.
func (a *App) Show(ctx context.Context, id string) error {
	r, err := a.catalog.Get(id)
	if err != nil {
		report(a.out, err)
		return err
	}

	fmt.Fprintf(a.out, "%s\n", r.Title)
	fmt.Fprintf(a.out, "Duration: %d min, difficulty: %s\n", r.DurationMinutes, models.DifficultyName(r.Difficulty))
	if len(r.Categories) > 0 {
		fmt.Fprintf(a.out, "Categories: %s\n", strings.Join(r.Categories, ", "))
	}

	if r.Image != "" {
		url, err := a.catalog.ImageURL(ctx, r)
		if err != nil {
			a.log.Warn(ctx, "failed to resolve image url", "recipe", r.ID, "error", err)
		} else {
			fmt.Fprintf(a.out, "Image: %s\n", url)
		}
	}
	if r.VideoURL != "" {
		fmt.Fprintf(a.out, "Video: %s\n", r.VideoURL)
	}
	if a.user != nil {
		a.printFavouriteState(ctx, r.ID)
	}

	fmt.Fprintln(a.out, "Ingredients:")
	for _, in := range r.Ingredients {
		fmt.Fprintf(a.out, "  - %s\n", in)
	}
	fmt.Fprintln(a.out, "Steps:")
	for i, s := range r.Steps {
		fmt.Fprintf(a.out, "  %d. %s\n", i+1, s)
	}
	return nil
}

func (a *App) printRecipes(recipes []models.Recipe) {
	if len(recipes) == 0 {
		fmt.Fprintln(a.out, a.tr("No recipes found."))
		return
	}
	for _, r := range recipes {
		fmt.Fprintf(a.out, "%s  %s (%d min, %s)\n", r.ID, r.Title, r.DurationMinutes, models.DifficultyName(r.Difficulty))
	}
}

func parseSearch(args []string) (catalog.SearchParams, error) {
	p := catalog.AnyRecipe
	if len(args) < 2 {
		return p, errUsage
	}

	text := strings.Join(args[1:], " ")
	switch strings.ToLower(args[0]) {
	case "title":
		p.Title = text
	case "ingredient":
		p.Ingredient = text
	case "category":
		p.Category = text
	case "duration":
		if len(args) != 3 {
			return p, errUsage
		}
		lo, err1 := strconv.Atoi(args[1])
		hi, err2 := strconv.Atoi(args[2])
		if err1 != nil || err2 != nil || lo < 0 || hi < lo {
			return p, errUsage
		}
		p.MinDuration, p.MaxDuration = lo, hi
	case "difficulty":
		d, ok := difficulties[strings.ToLower(text)]
		if !ok {
			return p, errUsage
		}
		p.Difficulty = d
	default:
		return p, errUsage
	}
	return p, nil
}

var difficulties = map[string]int{
	"easy":   models.DifficultyEasy,
	"medium": models.DifficultyMedium,
	"hard":   models.DifficultyHard,
}
