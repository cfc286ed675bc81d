package cli

import (
	"context"
	"fmt"
)

// Favourite marks or unmarks a catalog recipe for the logged-in user.
func (a *App) Favourite(ctx context.Context, id string, fav bool) error {
	if err := a.favs.SetFavourite(ctx, a.user.ID, id, fav); err != nil {
		report(a.out, err)
		return err
	}

	if fav {
		fmt.Fprintln(a.out, a.tr("Added %s to favourites.", id))
	} else {
		fmt.Fprintln(a.out, a.tr("Removed %s from favourites.", id))
	}
	return nil
}

func (a *App) printFavouriteState(ctx context.Context, id string) {
	fav, err := a.favs.IsFavourite(ctx, a.user.ID, id)
	if err != nil {
		a.log.Warn(ctx, "failed to read favourite state", "recipe", id, "error", err)
		return
	}
	n, err := a.favs.Count(ctx, id)
	if err != nil {
		a.log.Warn(ctx, "failed to count favourites", "recipe", id, "error", err)
		return
	}

	if fav {
		fmt.Fprintln(a.out, a.tr("In your favourites."))
	}
	fmt.Fprintln(a.out, a.tr("Favourite of %d users.", n))
}
