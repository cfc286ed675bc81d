package cli

import (
	"context"
	"fmt"
)

// Language shows the interface language, or switches it when args names one.
func (a *App) Language(ctx context.Context, args []string) error {
	if len(args) > 1 {
		fmt.Fprintln(a.out, "Usage: lang [en|es|it]")
		return errUsage
	}

	if len(args) == 1 {
		tag, err := a.settings.SetLanguage(ctx, args[0])
		if err != nil {
			report(a.out, err)
			return err
		}
		a.setLanguage(tag)
	}

	fmt.Fprintln(a.out, a.tr("Language: %s", languageName(*a.lang.Load())))
	return nil
}

func (a *App) restoreLanguage(ctx context.Context) {
	tag, err := a.settings.Language(ctx)
	if err != nil {
		a.log.Error(ctx, "failed to restore language", "error", err)
	}
	a.setLanguage(tag)
}
