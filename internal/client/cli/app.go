package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/crammer/internal/client/client"
	"github.com/dmitrijs2005/crammer/internal/client/config"
	"github.com/dmitrijs2005/crammer/internal/client/nav"
	"github.com/dmitrijs2005/crammer/internal/client/session"
	"github.com/dmitrijs2005/crammer/internal/client/store"
	"github.com/dmitrijs2005/crammer/internal/common"
	"github.com/dmitrijs2005/crammer/internal/logging"
)

type Mode string

const (
	ModeUnknown Mode = ""
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// CredentialStore is the local persistence the App owns.
type CredentialStore interface {
	session.CredentialStore
	Close() error
}

type App struct {
	config  *config.Config
	log     logging.Logger
	store   CredentialStore
	gateway client.Client
	session *session.Controller
	nav     *nav.Navigator

	login  *LoginScreen
	signup *SignupScreen
	home   *HomeScreen

	reader *bufio.Reader
	out    io.Writer
	alert  Alerter
	now    func() time.Time

	modeMu sync.Mutex
	mode   Mode
}

// NewApp opens the credential store, builds the HTTP gateway and wires the
// screens to stdin and stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, err := store.Open(ctx, c.StorePath, log)
	if err != nil {
		log.Error(ctx, "error initializing credential store", "path", c.StorePath, "error", err)
		return nil, err
	}

	gw := client.NewHTTPClient(c.BaseURL, log, client.WithTimeout(c.RequestTimeout))

	return newApp(c, log, st, gw, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, log logging.Logger, st CredentialStore, gw client.Client, in io.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		log:     log,
		store:   st,
		gateway: gw,
		session: session.NewController(st, log),
		nav:     nav.NewNavigator(),
		reader:  bufio.NewReader(in),
		out:     out,
		now:     time.Now,
	}

	term := NewTerminal(a.reader, out)
	a.alert = term
	a.login = NewLoginScreen(gw, a.session, term, log)
	a.signup = NewSignupScreen(gw, a.session, term, log)
	a.home = NewHomeScreen(a.session, term, term, log)

	a.session.Subscribe(nav.Observer(a.nav))
	a.session.Subscribe(func(s session.State) {
		log.Debug(context.Background(), "session changed", "status", s.Status.String(), "route", string(a.nav.Current()))
	})

	return a
}

// Run checks for a stored session, starts the online watcher and blocks in
// the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	defer a.close(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintf(a.out, "Welcome to %s (type 'help' for commands)\n", common.AppName)
	a.session.CheckAuth(ctx)
	if a.nav.Current() == nav.RouteHome {
		a.Home(ctx)
	}

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.reader, a.out)
	return nil
}

func (a *App) close(ctx context.Context) {
	if err := a.gateway.Close(); err != nil {
		a.log.Warn(ctx, "error closing gateway", "error", err)
	}
	if err := a.store.Close(); err != nil {
		a.log.Warn(ctx, "error closing credential store", "error", err)
	}
}

func (a *App) route() nav.Route {
	return a.nav.Current()
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

// status is shown in the prompt, e.g. "(Ada online)".
func (a *App) status() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.FirstName()
	}
	if m := a.getMode(); m != ModeUnknown {
		if s != "" {
			s += " "
		}
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// checkOnline pings the server once and records the result.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := a.gateway.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
