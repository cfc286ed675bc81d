package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

var (
	printlnFn = fmt.Println
	printFn   = fmt.Print
)

// execIface lists the App commands runREPL dispatches to.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	Recipes(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Show(ctx context.Context, id string) error
	Timer(ctx context.Context, args []string) error
	Favourite(ctx context.Context, id string, fav bool) error
	Language(ctx context.Context, args []string) error
}

func printHelp(loggedIn bool) {
	if !loggedIn {
		printlnFn("Available commands: register, login, lang, help, exit")
		return
	}
	printlnFn("Available commands: recipes, search, show <id>, fav <id>, unfav <id>, favourites, timer, lang, profile, delete, logout, help, exit")
	printlnFn("  search [favourites] title|ingredient|category <text>")
	printlnFn("  search duration <min> <max>")
	printlnFn("  search difficulty easy|medium|hard")
	printlnFn("  timer set <MM:SS>|start|pause|reset|status")
	printlnFn("  lang [en|es|it]")
}

func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	printlnFn("Welcome to ChefTube. Type 'help' for commands.")

	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(statusFn())
		printFn("> ")

		line, err := readLine(reader)
		if err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd, args := strings.ToLower(fields[0]), fields[1:]

		// handlers report their own errors to the user
		switch cmd {
		case "help":
			printHelp(a.isLoggedIn())
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "lang":
			_ = a.Language(ctx, args)
			continue
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "register":
				_ = a.Register(ctx)
			case "login":
				_ = a.Login(ctx)
			case "recipes", "search", "show", "fav", "unfav", "favourites", "timer", "profile", "delete", "logout":
				printlnFn("Please login first.")
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "recipes":
			_ = a.Recipes(ctx)
		case "search":
			_ = a.Search(ctx, args)
		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])
		case "fav", "unfav":
			if len(args) != 1 {
				printlnFn("Usage:", cmd, "<id>")
				continue
			}
			_ = a.Favourite(ctx, args[0], cmd == "fav")
		case "favourites":
			_ = a.Search(ctx, []string{"favourites"})
		case "timer":
			_ = a.Timer(ctx, args)
		case "profile":
			_ = a.Profile(ctx)
		case "delete":
			_ = a.DeleteAccount(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "register", "login":
			printlnFn("Already logged in, logout first.")
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
