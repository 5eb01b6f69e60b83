package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/crammer/internal/client/nav"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	route() nav.Route
	status() string
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	ShowLogin()
	ShowSignup()
	Home(ctx context.Context)
	Me(ctx context.Context) error
	Open(ctx context.Context, name string) error
	Logout(ctx context.Context) error
}

var helpByRoute = map[nav.Route]string{
	nav.RouteLogin:  "Available commands: login, signup, help, exit",
	nav.RouteSignup: "Available commands: signup, login, help, exit",
	nav.RouteHome:   "Available commands: home, me, open <action>, logout, help, exit",
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Which commands exist depends on the current
// route:
//
//	login:   login (submit credentials), signup (go to signup), help, exit
//	signup:  signup (submit the form), login (back to login), help, exit
//	home:    home, me, open <action>, logout, help, exit
//
// Handler errors are not fatal; handlers alert or log their own failures.
// The loop exits on EOF, on "exit" or "quit", or when ctx is done.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		prompt := "crammer " + string(a.route())
		if st := a.status(); st != "" {
			prompt += " " + st
		}
		fmt.Fprint(w, prompt+"> ")

		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		case "help":
			if h, ok := helpByRoute[a.route()]; ok {
				fmt.Fprintln(w, h)
			} else {
				fmt.Fprintln(w, "Available commands: help, exit")
			}
			continue
		}

		if !dispatch(ctx, a, cmd, args, w) {
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

// dispatch runs cmd for the current route and reports whether it exists there.
func dispatch(ctx context.Context, a execIface, cmd string, args []string, w io.Writer) bool {
	switch a.route() {
	case nav.RouteLogin:
		switch cmd {
		case "login":
			_ = a.Login(ctx)
		case "signup":
			a.ShowSignup()
		default:
			return false
		}

	case nav.RouteSignup:
		switch cmd {
		case "signup":
			_ = a.Signup(ctx)
		case "login":
			a.ShowLogin()
		default:
			return false
		}

	case nav.RouteHome:
		switch cmd {
		case "home":
			a.Home(ctx)
		case "me":
			_ = a.Me(ctx)
		case "open":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: open <action>")
				break
			}
			_ = a.Open(ctx, strings.Join(args, " "))
		case "logout":
			_ = a.Logout(ctx)
		default:
			return false
		}

	default:
		return false
	}
	return true
}
