package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/crammer/internal/client/dashboard"
	"github.com/dmitrijs2005/crammer/internal/logging"
)

type HomeScreen struct {
	session Session
	alert   Alerter
	confirm Confirmer
	log     logging.Logger
	busy    busyFlag
}

func NewHomeScreen(s Session, alert Alerter, confirm Confirmer, log logging.Logger) *HomeScreen {
	return &HomeScreen{session: s, alert: alert, confirm: confirm, log: log.With("screen", "home")}
}

// Render writes the dashboard of the current user as of now.
func (h *HomeScreen) Render(w io.Writer, now time.Time) error {
	user := h.session.State().User
	if user == nil {
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	}

	d := dashboard.For(user.Role)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s,\n%s!\n", dashboard.Greeting(now), user.FirstName())
	fmt.Fprintf(tw, "[%s]\n\n", dashboard.Badge(user.Role))

	fmt.Fprintln(tw, "Overview")
	for _, s := range d.Stats {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.Title, s.Value, s.TrendValue)
	}

	if len(d.Actions) > 0 {
		fmt.Fprintln(tw, "\nQuick Actions")
		for _, a := range d.Actions {
			fmt.Fprintf(tw, "  %s\t%s\n", a.Title, a.Description)
		}
	}

	fmt.Fprintln(tw, "\nRecent Activity")
	if len(d.Activity) == 0 {
		fmt.Fprintf(tw, "  %s\t%s\n", "No recent activity", "Your recent activities will appear here")
	}
	for _, a := range d.Activity {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", a.Title, a.Description, a.When)
	}

	return tw.Flush()
}

// Feature announces a quick action that is not built yet.
func (h *HomeScreen) Feature(name string) {
	h.alert.Alert("Coming Soon", fmt.Sprintf("%s feature will be available soon!", name))
}

// Logout asks for confirmation and then logs out. Declining is not an
// error. A failed logout is alerted and the session stays as it was.
func (h *HomeScreen) Logout(ctx context.Context) error {
	if err := h.busy.acquire(); err != nil {
		return err
	}
	defer h.busy.release()

	if !h.confirm.Confirm("Logout", "Are you sure you want to logout?") {
		return nil
	}

	if err := h.session.Logout(ctx); err != nil {
		h.log.Error(ctx, "logout failed", "error", err)
		h.alert.Alert(titleError, msgLogoutFailed)
		return err
	}
	return nil
}
