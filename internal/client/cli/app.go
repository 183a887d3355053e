package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/config"
	"github.com/dmitrijs2005/taskboard/internal/client/services"
	"github.com/dmitrijs2005/taskboard/internal/client/session"
	"github.com/dmitrijs2005/taskboard/internal/client/tokenstore"
	"github.com/dmitrijs2005/taskboard/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Manager
	teams    *services.TeamService
	projects *services.ProjectService
	tasks    *services.TaskService

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	})))

	db, err := tokenstore.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initialize local database: %w", err)
	}

	store := tokenstore.NewSQLiteStore(db)
	client := api.New(cfg.ServerBaseURL, store, api.WithLogger(log))

	manager := session.NewManager(client, store, log)
	manager.Subscribe(func(snap session.Snapshot) {
		user := ""
		if snap.Authenticated() {
			user = snap.User.Username
		}
		log.Debug(ctx, "session changed", "authenticated", snap.Authenticated(), "user", user)
	})

	return &App{
		config:   cfg,
		log:      log,
		session:  manager,
		teams:    services.NewTeamService(client),
		projects: services.NewProjectService(client),
		tasks:    services.NewTaskService(client),
		db:       db,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func slogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run bootstraps the session from the stored credential and hands control
// to the REPL. It blocks until the user exits or the scanner hits EOF.
func (a *App) Run(ctx context.Context) {
	a.session.Bootstrap(ctx)

	if snap := a.session.Current(); snap.Authenticated() {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", snap.User.FullName())
	} else {
		fmt.Fprintln(a.out, "Welcome to taskboard (type 'help' for commands)")
	}

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin), a.out)
}

func (a *App) isAuthenticated() bool {
	return a.session.Current().Authenticated()
}

func (a *App) status() string {
	snap := a.session.Current()
	if snap.Authenticated() {
		return fmt.Sprintf("(%s)", snap.User.Username)
	}
	return "(anonymous)"
}

// reportErr prints a failed operation's message for the user. Backend
// messages are already human-readable; anything else falls back to the
// error text.
func (a *App) reportErr(err error) {
	fmt.Fprintln(a.out, "Error:", err.Error())
}
