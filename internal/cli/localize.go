package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	textcatalog "golang.org/x/text/message/catalog"
)

// translations holds the Spanish and Italian renderings of the messages
// printed through App.tr. English uses the key itself.
var translations = []struct {
	key, es, it string
}{
	{"Welcome, %s!", "¡Bienvenido, %s!", "Benvenuto, %s!"},
	{"Welcome back, %s!", "¡Hola de nuevo, %s!", "Bentornato, %s!"},
	{"Account created. You can now login.", "Cuenta creada. Ya puedes iniciar sesión.", "Account creato. Ora puoi accedere."},
	{"Logged out.", "Sesión cerrada.", "Disconnesso."},
	{"Profile updated.", "Perfil actualizado.", "Profilo aggiornato."},
	{"Account deleted.", "Cuenta eliminada.", "Account eliminato."},
	{"No recipes found.", "No se encontraron recetas.", "Nessuna ricetta trovata."},
	{"Timer finished!", "¡Temporizador terminado!", "Timer terminato!"},
	{"Added %s to favourites.", "%s añadida a favoritos.", "%s aggiunta ai preferiti."},
	{"Removed %s from favourites.", "%s eliminada de favoritos.", "%s rimossa dai preferiti."},
	{"In your favourites.", "En tus favoritos.", "Nei tuoi preferiti."},
	{"Favourite of %d users.", "Favorita de %d usuarios.", "Preferita di %d utenti."},
	{"Language: %s", "Idioma: %s", "Lingua: %s"},
}

var messageCatalog = buildCatalog()

func buildCatalog() *textcatalog.Builder {
	b := textcatalog.NewBuilder(textcatalog.Fallback(language.English))
	for _, t := range translations {
		for tag, msg := range map[language.Tag]string{
			language.English: t.key,
			language.Spanish: t.es,
			language.Italian: t.it,
		} {
			if err := b.SetString(tag, t.key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// newPrinter returns a printer for tag. Printers are not safe for
// concurrent use, so callers build one per message.
func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messageCatalog))
}

// languageName renders tag in its own language, e.g. "español".
func languageName(tag language.Tag) string {
	return display.Self.Name(tag)
}
