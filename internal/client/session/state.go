package session

import "github.com/dmitrijs2005/crammer/internal/client/models"

// Status is the controller's belief about the session.
type Status int

const (
	StatusUnknown Status = iota
	StatusUnauthenticated
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusUnauthenticated:
		return "unauthenticated"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session cell. User is non-nil only when
// Status is StatusAuthenticated.
type State struct {
	Status  Status
	User    *models.User
	Loading bool
}

func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}
