package cli

import (
	"context"

	"github.com/dmitrijs2005/crammer/internal/client/client"
	"github.com/dmitrijs2005/crammer/internal/client/forms"
	"github.com/dmitrijs2005/crammer/internal/logging"
)

type LoginScreen struct {
	gateway client.Client
	session Session
	alert   Alerter
	log     logging.Logger
	busy    busyFlag
}

func NewLoginScreen(gateway client.Client, s Session, alert Alerter, log logging.Logger) *LoginScreen {
	return &LoginScreen{gateway: gateway, session: s, alert: alert, log: log.With("screen", "login")}
}

// Submit validates the form and, when it is valid, logs in. Field errors
// are returned without contacting the server. Gateway and storage failures
// are alerted and returned.
func (s *LoginScreen) Submit(ctx context.Context, form forms.LoginForm) (forms.FieldErrors, error) {
	if err := s.busy.acquire(); err != nil {
		return nil, err
	}
	defer s.busy.release()

	if errs := form.Validate(); errs.Any() {
		return errs, nil
	}

	payload, err := s.gateway.Login(ctx, form.Request())
	if err != nil {
		s.log.Warn(ctx, "login failed", "error", err)
		s.alert.Alert(titleError, client.Message(err, msgLoginFailed))
		return nil, err
	}

	if err := s.session.Login(ctx, payload.User, payload.Token); err != nil {
		s.alert.Alert(titleError, msgLoginFailed)
		return nil, err
	}
	return nil, nil
}
