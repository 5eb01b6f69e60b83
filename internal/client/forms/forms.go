package forms

import (
	"github.com/dmitrijs2005/crammer/internal/client/client"
	"github.com/dmitrijs2005/crammer/internal/client/models"
)

type LoginForm struct {
	Email    string `form:"email" validate:"notblank,emailfmt"`
	Password string `form:"password" validate:"required,min=8"`
}

// Validate checks every field and returns the failures, nil when valid.
func (f LoginForm) Validate() FieldErrors {
	return check(f)
}

// Request builds the gateway request. The email is sent as typed.
func (f LoginForm) Request() client.LoginRequest {
	return client.LoginRequest{Email: f.Email, Password: f.Password}
}

type SignupForm struct {
	FullName        string      `form:"full_name" validate:"notblank,trimmin"`
	Email           string      `form:"email" validate:"notblank,emailfmt"`
	Password        string      `form:"password" validate:"required,min=8,pwmix"`
	ConfirmPassword string      `form:"confirm_password" validate:"required,eqfield=Password"`
	Role            models.Role `form:"role" validate:"required,role"`
	AcceptedTerms   bool        `form:"-"`
}

func (f SignupForm) Validate() FieldErrors {
	return check(f)
}

// CheckTerms is the last gate before the signup call.
func (f SignupForm) CheckTerms() error {
	if !f.AcceptedTerms {
		return ErrTermsNotAccepted
	}
	return nil
}

// Request builds the gateway request. Fields are sent as typed; the
// backend normalises the name.
func (f SignupForm) Request() client.SignupRequest {
	return client.SignupRequest{
		FullName: f.FullName,
		Email:    f.Email,
		Password: f.Password,
		Role:     f.Role,
	}
}
