package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/crammer/internal/client/client"
	"github.com/dmitrijs2005/crammer/internal/client/forms"
	"github.com/dmitrijs2005/crammer/internal/logging"
)

type SignupScreen struct {
	gateway client.Client
	session Session
	alert   Alerter
	log     logging.Logger
	busy    busyFlag
}

func NewSignupScreen(gateway client.Client, s Session, alert Alerter, log logging.Logger) *SignupScreen {
	return &SignupScreen{gateway: gateway, session: s, alert: alert, log: log.With("screen", "signup")}
}

// Submit validates the form, requires accepted terms, creates the account
// and logs the new user in.
func (s *SignupScreen) Submit(ctx context.Context, form forms.SignupForm) (forms.FieldErrors, error) {
	if err := s.busy.acquire(); err != nil {
		return nil, err
	}
	defer s.busy.release()

	if errs := form.Validate(); errs.Any() {
		return errs, nil
	}
	if err := form.CheckTerms(); err != nil {
		if errors.Is(err, forms.ErrTermsNotAccepted) {
			s.alert.Alert("Terms Required", "Please accept the terms and conditions to continue")
		}
		return nil, err
	}

	payload, err := s.gateway.Signup(ctx, form.Request())
	if err != nil {
		s.log.Warn(ctx, "signup failed", "error", err)
		s.alert.Alert(titleError, client.Message(err, msgSignupFailed))
		return nil, err
	}

	if err := s.session.Login(ctx, payload.User, payload.Token); err != nil {
		s.alert.Alert(titleError, msgSignupFailed)
		return nil, err
	}

	s.alert.Alert("Success!", "Your account has been created successfully.")
	return nil, nil
}
