// Package forms validates the login and signup forms before anything is
// sent to the server. Each invalid field gets exactly one message: the one of
// the first rule it fails.
package forms

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/crammer/internal/client/models"
)

// ErrTermsNotAccepted is returned by SignupForm.CheckTerms.
var ErrTermsNotAccepted = errors.New("terms not accepted")

// Field names used as FieldErrors keys.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldFullName        = "full_name"
	FieldConfirmPassword = "confirm_password"
	FieldRole            = "role"
)

// FieldErrors maps a field name to its message. A nil or empty map means
// the form is valid.
type FieldErrors map[string]string

// Any reports whether at least one field is invalid.
func (fe FieldErrors) Any() bool { return len(fe) > 0 }

// Get returns the message for field, or "".
func (fe FieldErrors) Get(field string) string { return fe[field] }

// emailRe rejects any whitespace, including \v, Unicode separators and the
// byte order mark, around a single @ and a dotted domain.
var emailRe = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// messages holds the text for each field and failed tag.
var messages = map[string]map[string]string{
	FieldEmail: {
		"notblank": "Email is required",
		"emailfmt": "Please enter a valid email",
	},
	FieldPassword: {
		"required": "Password is required",
		"min":      "Password must be at least 8 characters",
		"pwmix":    "Password must contain uppercase, lowercase, and number",
	},
	FieldFullName: {
		"notblank": "Full name is required",
		"trimmin":  "Name must be at least 2 characters",
	},
	FieldConfirmPassword: {
		"required": "Please confirm your password",
		"eqfield":  "Passwords do not match",
	},
	FieldRole: {
		"required": "Please select a role",
		"role":     "Please select a valid role",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := f.Tag.Get("form")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	must(v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}))
	must(v.RegisterValidation("emailfmt", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	}))
	must(v.RegisterValidation("trimmin", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= 2
	}))
	must(v.RegisterValidation("pwmix", func(fl validator.FieldLevel) bool {
		return hasCharMix(fl.Field().String())
	}))
	must(v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	}))

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// hasCharMix reports whether s has an ASCII lower and upper case letter and
// a digit.
func hasCharMix(s string) bool {
	var lower, upper, digit bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return lower && upper && digit
}

// check runs the validator over form and turns the failures into messages.
func check(form any) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// Only reachable on a programming error such as a non-struct form.
		panic(err)
	}

	out := make(FieldErrors, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = fieldError(fe)
	}
	return out
}

func fieldError(fe validator.FieldError) string {
	if msg, ok := messages[fe.Field()][fe.Tag()]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}
