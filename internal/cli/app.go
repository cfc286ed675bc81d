package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/cheftube/internal/catalog"
	"github.com/dmitrijs2005/cheftube/internal/config"
	"github.com/dmitrijs2005/cheftube/internal/logging"
	"github.com/dmitrijs2005/cheftube/internal/models"
	"github.com/dmitrijs2005/cheftube/internal/repositories/repomanager"
	"github.com/dmitrijs2005/cheftube/internal/services"
	"github.com/dmitrijs2005/cheftube/internal/timer"
	"golang.org/x/text/language"
)

// userService is the subset of services.UserService used by the client.
type userService interface {
	Register(ctx context.Context, req services.RegisterRequest) (string, error)
	Login(ctx context.Context, identity, password string, keep bool) (*models.User, error)
	UpdateProfile(ctx context.Context, p services.ProfileUpdate) (*models.User, error)
	DeleteAccount(ctx context.Context, userID, currentPassword string) error
	AutoLogin(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
}

type favouriteService interface {
	SetFavourite(ctx context.Context, userID, recipeID string, fav bool) error
	Favourites(ctx context.Context, userID string) ([]string, error)
	IsFavourite(ctx context.Context, userID, recipeID string) (bool, error)
	Count(ctx context.Context, recipeID string) (int, error)
}

type settingsService interface {
	Language(ctx context.Context) (language.Tag, error)
	SetLanguage(ctx context.Context, code string) (language.Tag, error)
}

// App holds the client state: the logged-in user, the catalog, the cooking
// timer and the terminal streams.
type App struct {
	config   *config.Config
	log      logging.Logger
	users    userService
	favs     favouriteService
	settings settingsService
	catalog  *catalog.Catalog
	timer    *timer.Countdown
	user     *models.User
	lang     atomic.Pointer[language.Tag]
	reader   *bufio.Reader
	out      io.Writer
	db       *sql.DB
}

// NewApp opens the local store, loads the recipe catalog and builds the App.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, m, err := repomanager.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(services.NewUserService(db, m, cfg, log), cat, nil, log, os.Stdin, os.Stdout)
	a.favs = services.NewFavouriteService(db, m, cat, log)
	a.settings = services.NewSettingsService(db, m, log)
	a.config = cfg
	a.db = db
	return a, nil
}

func newApp(users userService, cat *catalog.Catalog, clock timer.Clock, log logging.Logger, in io.Reader, out io.Writer) *App {
	a := &App{
		log:     log,
		users:   users,
		catalog: cat,
		reader:  bufio.NewReader(in),
		out:     &lockedWriter{w: out},
	}
	a.setLanguage(language.English)
	a.timer = timer.New(clock, timer.Listener{
		OnTick: func(display string) {
			a.log.Debug(context.Background(), "timer tick", "remaining", display)
		},
		OnComplete: func() {
			fmt.Fprintln(a.out, "\a\n"+a.tr("Timer finished!"))
		},
	})
	return a
}

// Run restores the saved language and session and starts the REPL. It
// returns when the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.restoreLanguage(ctx)
	a.restoreSession(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close stops the timer and releases the store.
func (a *App) Close() {
	a.timer.Reset()
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error(context.Background(), "failed to close database", "error", err)
		}
		a.db = nil
	}
}

// tr formats a user-facing message in the current language.
func (a *App) tr(key string, args ...any) string {
	return newPrinter(*a.lang.Load()).Sprintf(key, args...)
}

func (a *App) setLanguage(tag language.Tag) {
	a.lang.Store(&tag)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	var b strings.Builder
	if a.user != nil {
		b.WriteString("[" + a.user.Username + "]")
	} else {
		b.WriteString("[guest]")
	}
	if a.timer.State() == timer.Running {
		b.WriteString(" timer " + a.timer.Display())
	}
	return b.String()
}

// lockedWriter serializes writes from command handlers and the timer
// goroutine.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
