package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/crammer/internal/client/nav"
)

type fakeExec struct {
	current nav.Route

	calls []string
	arg   string
}

func (f *fakeExec) route() nav.Route { return f.current }
func (f *fakeExec) status() string   { return "(test)" }
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.current = nav.RouteHome
	return nil
}
func (f *fakeExec) Signup(context.Context) error {
	f.calls = append(f.calls, "signup")
	f.current = nav.RouteHome
	return nil
}
func (f *fakeExec) ShowLogin() {
	f.calls = append(f.calls, "show-login")
	f.current = nav.RouteLogin
}
func (f *fakeExec) ShowSignup() {
	f.calls = append(f.calls, "show-signup")
	f.current = nav.RouteSignup
}
func (f *fakeExec) Home(context.Context)     { f.calls = append(f.calls, "home") }
func (f *fakeExec) Me(context.Context) error { f.calls = append(f.calls, "me"); return nil }
func (f *fakeExec) Open(_ context.Context, name string) error {
	f.calls = append(f.calls, "open")
	f.arg = name
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.current = nav.RouteLogin
	return nil
}

func TestRunREPL_CommandsFollowRoute(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"home",   // not available on login
		"signup", // go to signup screen
		"login",  // back to login
		"signup", // signup screen again
		"signup", // submit
		"help",
		"open study   sessions",
		"me",
		"home",
		"logout",
		"me", // not available after logout
		"exit",
		"login", // never reached
	}, "\n")

	exec := &fakeExec{current: nav.RouteLogin}
	var out bytes.Buffer
	runREPL(context.Background(), exec, rdr(input), &out)

	assert.Equal(t, []string{
		"show-signup", "show-login", "show-signup", "signup",
		"open", "me", "home", "logout",
	}, exec.calls)
	assert.Equal(t, "study sessions", exec.arg)

	got := out.String()
	assert.Contains(t, got, "crammer login (test)> ")
	assert.Contains(t, got, "Available commands: login, signup, help, exit")
	assert.Contains(t, got, "Available commands: home, me, open <action>, logout, help, exit")
	assert.Equal(t, 2, strings.Count(got, "Unknown command:"))
	assert.Contains(t, got, "Bye!")
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	exec := &fakeExec{current: nav.RouteHome}
	var out bytes.Buffer

	runREPL(context.Background(), exec, rdr("open\n\nquit\n"), &out)

	assert.Empty(t, exec.calls)
	assert.Contains(t, out.String(), "Usage: open <action>")
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	exec := &fakeExec{current: nav.RouteLogin}
	var out bytes.Buffer
	runREPL(context.Background(), exec, rdr("help"), &out)
	assert.Empty(t, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out.Reset()
	runREPL(ctx, exec, rdr("login\n"), &out)
	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}

func TestRunREPL_NoCommandsWhileLoading(t *testing.T) {
	exec := &fakeExec{current: nav.RouteNone}
	var out bytes.Buffer
	runREPL(context.Background(), exec, rdr("login\nhelp\nexit\n"), &out)

	assert.Empty(t, exec.calls)
	assert.Contains(t, out.String(), "Available commands: help, exit")
}
