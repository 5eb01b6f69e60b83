// Package dashboard holds the placeholder home screen content for each role.
// None of it comes from the server.
package dashboard

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/crammer/internal/client/models"
)

type Trend string

const (
	TrendUp      Trend = "up"
	TrendNeutral Trend = "neutral"
)

type Stat struct {
	Title      string
	Value      string
	Trend      Trend
	TrendValue string
}

// Action is a quick action tile. Feature is the name shown when it is opened.
type Action struct {
	Title       string
	Description string
	Feature     string
}

type Activity struct {
	Title       string
	Description string
	When        string
}

type Dashboard struct {
	Stats    []Stat
	Actions  []Action
	Activity []Activity
}

// Greeting returns the salutation for the local hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h < 12:
		return "Good Morning"
	case h < 17:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// Badge returns the role with its first letter upper-cased.
func Badge(r models.Role) string {
	s := string(r)
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}

// For returns the content for role. Unknown roles get zeroed stats and no
// actions or activity.
func For(r models.Role) Dashboard {
	switch r {
	case models.RoleStudent:
		return student
	case models.RoleMentor:
		return mentor
	case models.RoleAdmin:
		return admin
	default:
		return fallback
	}
}

// FindAction looks up a quick action of d by feature name or title,
// ignoring case.
func (d Dashboard) FindAction(name string) (Action, bool) {
	name = strings.TrimSpace(name)
	for _, a := range d.Actions {
		if strings.EqualFold(a.Feature, name) || strings.EqualFold(a.Title, name) {
			return a, true
		}
	}
	return Action{}, false
}
