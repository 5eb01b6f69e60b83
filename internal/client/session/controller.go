// Package session owns the client's authentication state: a single cell
// written only by Controller and read by screens and observers.
package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/crammer/internal/client/models"
	"github.com/dmitrijs2005/crammer/internal/logging"
)

// CredentialStore is the persistence the controller needs. Reads report
// absence instead of failing; writes fail with an error.
type CredentialStore interface {
	StoreTokens(ctx context.Context, tokens models.TokenData) error
	StoreUser(ctx context.Context, user models.User) error
	AccessToken(ctx context.Context) string
	User(ctx context.Context) *models.User
	Clear(ctx context.Context) error
}

// ErrNoAccessToken is returned by Login when the issued credentials carry no
// access token. Nothing is written in that case.
var ErrNoAccessToken = errors.New("access token is empty")

// Observer is notified after every state transition.
type Observer func(State)

type Controller struct {
	store CredentialStore
	log   logging.Logger

	mu    sync.RWMutex
	state State

	obsMu     sync.Mutex
	observers []subscription
	nextObsID int
}

type subscription struct {
	id int
	fn Observer
}

func NewController(store CredentialStore, log logging.Logger) *Controller {
	return &Controller{
		store: store,
		log:   log.With("component", "session"),
		state: State{Status: StatusUnknown, Loading: true},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.state
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}

// User returns the authenticated user or nil.
func (c *Controller) User() *models.User {
	return c.State().User
}

// Subscribe registers fn and returns a function that removes it. Observers
// run synchronously, in registration order, after the state is updated.
func (c *Controller) Subscribe(fn Observer) (unsubscribe func()) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()

	id := c.nextObsID
	c.nextObsID++
	c.observers = append(c.observers, subscription{id: id, fn: fn})

	return func() {
		c.obsMu.Lock()
		defer c.obsMu.Unlock()
		c.observers = slices.DeleteFunc(c.observers, func(s subscription) bool { return s.id == id })
	}
}

// CheckAuth derives the state from the credential store. A token without a
// cached profile counts as logged out. It never fails: storage problems
// surface as an unauthenticated session.
func (c *Controller) CheckAuth(ctx context.Context) {
	c.mu.Lock()
	c.state.Loading = true
	c.mu.Unlock()

	next := State{Status: StatusUnauthenticated}

	if token := c.store.AccessToken(ctx); token != "" {
		if user := c.store.User(ctx); user != nil {
			next = State{Status: StatusAuthenticated, User: user}
		} else {
			c.log.Warn(ctx, "access token present without cached user, treating as logged out")
		}
	}

	c.log.Info(ctx, "auth check finished", "status", next.Status.String())
	c.set(next)
}

// Login persists tokens, then the user, and only then marks the session
// authenticated. If either write fails the in-memory state is left as is.
// Credentials without an access token are refused before any write.
func (c *Controller) Login(ctx context.Context, user models.User, tokens models.TokenData) error {
	if tokens.AccessToken == "" {
		c.log.Error(ctx, "login error", "stage", "tokens", "error", ErrNoAccessToken)
		return ErrNoAccessToken
	}
	if err := c.store.StoreTokens(ctx, tokens); err != nil {
		c.log.Error(ctx, "login error", "stage", "tokens", "error", err)
		return fmt.Errorf("store tokens: %w", err)
	}
	if err := c.store.StoreUser(ctx, user); err != nil {
		c.log.Error(ctx, "login error", "stage", "user", "error", err)
		return fmt.Errorf("store user: %w", err)
	}

	c.log.Info(ctx, "user logged in", "user_id", user.ID, "role", string(user.Role))
	c.set(State{Status: StatusAuthenticated, User: &user})
	return nil
}

// UpdateUser replaces the profile of an authenticated session, both stored
// and in memory. It is a no-op returning nil when nobody is logged in.
func (c *Controller) UpdateUser(ctx context.Context, user models.User) error {
	if !c.State().IsAuthenticated() {
		return nil
	}
	if err := c.store.StoreUser(ctx, user); err != nil {
		c.log.Error(ctx, "update user error", "error", err)
		return fmt.Errorf("store user: %w", err)
	}
	c.set(State{Status: StatusAuthenticated, User: &user})
	return nil
}

// Logout clears the credential store and then resets the state. When
// clearing fails the error is returned and nothing else changes.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "logout error", "error", err)
		return fmt.Errorf("clear credentials: %w", err)
	}

	c.log.Info(ctx, "user logged out")
	c.set(State{Status: StatusUnauthenticated})
	return nil
}

func (c *Controller) set(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()

	c.notify(c.State())
}

func (c *Controller) notify(s State) {
	c.obsMu.Lock()
	subs := slices.Clone(c.observers)
	c.obsMu.Unlock()

	for _, sub := range subs {
		sub.fn(s)
	}
}
