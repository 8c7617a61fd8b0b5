package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/docuseek/docuseek/internal/client/api"
	"github.com/docuseek/docuseek/internal/client/config"
	"github.com/docuseek/docuseek/internal/client/credentials"
	"github.com/docuseek/docuseek/internal/client/session"
	"github.com/docuseek/docuseek/internal/logging"

	_ "modernc.org/sqlite"
)

// Screen identifies the active REPL view.
type Screen string

const (
	ScreenLogin Screen = "login"
	ScreenHome  Screen = "home"
)

// Mode is the backend reachability indicator shown in the prompt,
// maintained by the health watcher.
type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config   *config.Config
	sess     *session.Manager
	client   api.Client
	log      logging.Logger
	validate *validator.Validate
	reader   *bufio.Reader

	active Screen
	Mode   Mode
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credentials.Open(ctx, c.CredentialDBPath)
	if err != nil {
		log.Error(ctx, "error initializing credential database", "error", err)
		return nil, err
	}
	store := credentials.NewSQLiteStore(db)

	apiClient := api.NewHTTPClient(c.ServerBaseURL, nil)

	app := &App{
		config:   c,
		client:   apiClient,
		log:      log,
		validate: validator.New(),
		reader:   bufio.NewReader(os.Stdin),
		active:   ScreenLogin,
	}
	app.sess = session.NewManager(store, apiClient, log, app)

	return app, nil
}

// ShowLogin implements session.Navigator: a forced logout (401 anywhere)
// lands the user back on the login screen.
func (a *App) ShowLogin() {
	a.active = ScreenLogin
}

// screen recomputes the active view from the route guard before every
// prompt. The guard's Defer decision keeps the current screen while an
// operation settles.
func (a *App) screen() Screen {
	st := a.sess.State()
	switch a.active {
	case ScreenLogin:
		if session.GuardLogin(st) == session.RedirectHome {
			a.active = ScreenHome
		}
	default:
		if session.Guard(st) == session.RedirectLogin {
			a.active = ScreenLogin
		}
	}
	return a.active
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "backend reachability changed", "mode", string(mode))
	}
}

// Run restores any persisted session, starts the health watcher, and blocks
// in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	a.sess.Restore(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartHealthWatcher(watchCtx, a.config.HealthCheckInterval)

	printlnFn("docuseek CLI (type 'help' for commands)")
	runREPL(ctx, a, a.statusLine, bufio.NewScanner(os.Stdin))
}

func (a *App) statusLine() string {
	s := ""
	if st := a.sess.State(); st.User != nil {
		s = st.User.Email + " "
	}
	if a.Mode != ModeUnknown {
		s += string(a.Mode)
	}
	if s != "" {
		s = "(" + s + ")"
	}
	return s
}

// StartHealthWatcher polls the backend liveness endpoint on the given
// interval and flips the reachability indicator. Probes get a short
// deadline of their own so a hung backend does not stall the ticker.
func (a *App) StartHealthWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			_, err := a.client.HealthCheck(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
