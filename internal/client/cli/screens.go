package cli

import (
	"context"

	"github.com/dmitrijs2005/crammer/internal/client/models"
	"github.com/dmitrijs2005/crammer/internal/client/session"
)

// Session is the part of the session controller the screens use.
type Session interface {
	State() session.State
	Login(ctx context.Context, user models.User, tokens models.TokenData) error
	Logout(ctx context.Context) error
	UpdateUser(ctx context.Context, user models.User) error
}

const (
	titleError = "Error"

	msgLoginFailed  = "Invalid credentials"
	msgSignupFailed = "Something went wrong. Please try again."
	msgLogoutFailed = "Failed to logout. Please try again."
)
