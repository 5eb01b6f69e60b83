package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/crammer/internal/client/client"
	"github.com/dmitrijs2005/crammer/internal/client/dashboard"
	"github.com/dmitrijs2005/crammer/internal/client/forms"
	"github.com/dmitrijs2005/crammer/internal/client/models"
	"github.com/dmitrijs2005/crammer/internal/client/nav"
	"github.com/dmitrijs2005/crammer/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

var fieldOrder = []string{
	forms.FieldFullName,
	forms.FieldEmail,
	forms.FieldPassword,
	forms.FieldConfirmPassword,
	forms.FieldRole,
}

func (a *App) printFieldErrors(errs forms.FieldErrors) {
	for _, f := range fieldOrder {
		if msg := errs.Get(f); msg != "" {
			fmt.Fprintf(a.out, "  %s: %s\n", f, msg)
		}
	}
}

func (a *App) readPassword(prompt string) (string, error) {
	pw, err := getPassword(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Login prompts for credentials and submits them on the login screen.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := a.readPassword("Password")
	if err != nil {
		return err
	}

	errs, err := a.login.Submit(ctx, forms.LoginForm{Email: email, Password: password})
	if errs.Any() {
		a.printFieldErrors(errs)
		return nil
	}
	if err != nil {
		return err
	}

	a.Home(ctx)
	return nil
}

// Signup prompts for the signup form and submits it.
func (a *App) Signup(ctx context.Context) error {
	var f forms.SignupForm
	var err error

	if f.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if f.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if f.Password, err = a.readPassword("Password"); err != nil {
		return err
	}
	if f.ConfirmPassword, err = a.readPassword("Confirm password"); err != nil {
		return err
	}

	roles := make([]string, 0, len(models.Roles()))
	for _, r := range models.Roles() {
		roles = append(roles, string(r))
	}
	role, err := getSimpleText(a.reader, fmt.Sprintf("Role (%s)", strings.Join(roles, ", ")), a.out)
	if err != nil {
		return err
	}
	f.Role = models.Role(strings.ToLower(role))

	if f.AcceptedTerms, err = GetYesNo(a.reader, "I agree to the Terms of Service and Privacy Policy", a.out); err != nil {
		return err
	}

	errs, err := a.signup.Submit(ctx, f)
	if errs.Any() {
		a.printFieldErrors(errs)
		return nil
	}
	if err != nil {
		return err
	}

	a.Home(ctx)
	return nil
}

// Home renders the dashboard.
func (a *App) Home(_ context.Context) {
	if err := a.home.Render(a.out, a.now()); err != nil {
		a.log.Warn(context.Background(), "error rendering home", "error", err)
	}
}

// Me fetches the current user with the stored access token and shows it.
// The fetched profile replaces the cached one.
func (a *App) Me(ctx context.Context) error {
	token := a.store.AccessToken(ctx)
	if token == "" {
		a.alert.Alert(titleError, "No active session")
		return client.ErrUnauthorized
	}

	user, err := a.gateway.GetCurrentUser(ctx, token)
	if err != nil {
		a.alert.Alert(titleError, client.Message(err, "Failed to load profile"))
		return err
	}
	if err := a.session.UpdateUser(ctx, *user); err != nil {
		a.log.Warn(ctx, "could not cache refreshed profile", "error", err)
	}

	fmt.Fprintf(a.out, "%s <%s>\n  role: %s\n  active: %t\n  verified: %t\n  member since: %s\n",
		user.FullName, user.Email, user.Role.Label(), user.IsActive, user.IsVerified, user.CreatedAt)
	return nil
}

// Open handles a quick action by name.
func (a *App) Open(_ context.Context, name string) error {
	u := a.session.User()
	if u == nil {
		return client.ErrUnauthorized
	}
	if act, ok := dashboard.For(u.Role).FindAction(name); ok {
		a.home.Feature(act.Feature)
		return nil
	}
	fmt.Fprintf(a.out, "Unknown action: %s\n", name)
	return nil
}

// Logout confirms and logs out; navigation returns to login on success.
func (a *App) Logout(ctx context.Context) error {
	err := a.home.Logout(ctx)
	if errors.Is(err, ErrBusy) {
		return err
	}
	if err == nil && a.route() == nav.RouteLogin {
		fmt.Fprintln(a.out, "Logged out.")
	}
	return err
}

// ShowSignup opens the signup screen on top of login.
func (a *App) ShowSignup() {
	if nav.Allowed(a.session.State(), nav.RouteSignup) && a.route() != nav.RouteSignup {
		a.nav.Push(nav.RouteSignup)
		fmt.Fprintln(a.out, "Create Account: fill in your details with 'signup'.")
	}
}

// ShowLogin goes back to the login screen.
func (a *App) ShowLogin() {
	switch {
	case a.route() == nav.RouteSignup && a.nav.CanGoBack():
		a.nav.Back()
	case !a.nav.Open(a.session.State(), nav.RouteLogin):
		return
	}
	fmt.Fprintln(a.out, "Welcome Back: sign in with 'login'.")
}
