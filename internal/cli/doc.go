// Package cli provides the interactive ChefTube command-line client.
//
// It wires configuration, the credential store, the recipe catalog and a
// cooking timer into a REPL. The saved language is applied on start, and a
// saved session is restored when the user chose "keep me logged in" earlier.
//
// Commands:
//   - register, login, logout
//   - profile, delete (account)
//   - recipes, search, show
//   - fav, unfav, favourites
//   - timer set|start|pause|reset|status
//   - lang (also for guests)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
