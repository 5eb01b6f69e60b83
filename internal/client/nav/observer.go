package nav

import "github.com/dmitrijs2005/crammer/internal/client/session"

// Observer returns a session observer that keeps n in line with the session:
// once logged out the history is unwound and only the login screen remains,
// so nothing authenticated is reachable through Back; once logged in the
// current screen is replaced by home.
func Observer(n *Navigator) session.Observer {
	return func(s session.State) {
		switch s.Status {
		case session.StatusUnauthenticated:
			n.Reset(RouteLogin)
		case session.StatusAuthenticated:
			n.Replace(RouteHome)
		}
	}
}
