// Package nav keeps the screen history of the client and reacts to session
// changes, so the session logic itself never touches navigation.
package nav

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/crammer/internal/client/session"
)

// Route identifies a screen.
type Route string

const (
	RouteNone   Route = ""
	RouteLogin  Route = "login"
	RouteSignup Route = "signup"
	RouteHome   Route = "home"
)

// Navigator is a history stack of routes. The top of the stack is the
// current screen.
type Navigator struct {
	mu    sync.Mutex
	stack []Route
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// Push opens r on top of the current screen.
func (n *Navigator) Push(r Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = append(n.stack, r)
}

// Replace swaps the current screen for r, or opens r on an empty stack.
func (n *Navigator) Replace(r Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) == 0 {
		n.stack = append(n.stack, r)
		return
	}
	n.stack[len(n.stack)-1] = r
}

// CanGoBack reports whether there is a screen below the current one.
func (n *Navigator) CanGoBack() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.stack) > 1
}

// Back pops the current screen. It returns false when there is nothing to
// go back to.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) <= 1 {
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	return true
}

// Current returns the top route, or RouteNone.
func (n *Navigator) Current() Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) == 0 {
		return RouteNone
	}
	return n.stack[len(n.stack)-1]
}

// History returns a copy of the stack, bottom first.
func (n *Navigator) History() []Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Route(nil), n.stack...)
}

// Reset unwinds the whole history and leaves r as the only screen.
func (n *Navigator) Reset(r Route) {
	for n.Back() {
	}
	n.Replace(r)
}

// Guard returns the routes that may be shown in the given session state.
// Nothing is shown while the initial check is still loading.
func Guard(s session.State) []Route {
	switch {
	case s.Loading || s.Status == session.StatusUnknown:
		return nil
	case s.IsAuthenticated():
		return []Route{RouteHome}
	default:
		return []Route{RouteLogin, RouteSignup}
	}
}

// Allowed reports whether r may be shown in state s.
func Allowed(s session.State, r Route) bool {
	return slices.Contains(Guard(s), r)
}

// Open moves to r if the session allows it, replacing the current screen,
// and reports whether it did.
func (n *Navigator) Open(s session.State, r Route) bool {
	if !Allowed(s, r) {
		return false
	}
	n.Replace(r)
	return true
}
