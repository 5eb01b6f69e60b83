package cli

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/crammer/internal/client/client"
	"github.com/dmitrijs2005/crammer/internal/client/models"
	"github.com/dmitrijs2005/crammer/internal/client/session"
)

/*************
 * Fake gateway
 *************/

type fakeGateway struct {
	mu sync.Mutex

	loginReqs  []client.LoginRequest
	signupReqs []client.SignupRequest
	meTokens   []string
	pings      int

	loginResp  *models.AuthPayload
	loginErr   error
	signupResp *models.AuthPayload
	signupErr  error
	meResp     *models.User
	meErr      error
	pingErr    error

	// block, when set, is waited on inside Login.
	block chan struct{}
}

func (f *fakeGateway) Login(_ context.Context, req client.LoginRequest) (*models.AuthPayload, error) {
	f.mu.Lock()
	f.loginReqs = append(f.loginReqs, req)
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.loginResp, f.loginErr
}

func (f *fakeGateway) Signup(_ context.Context, req client.SignupRequest) (*models.AuthPayload, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.signupReqs = append(f.signupReqs, req)
	return f.signupResp, f.signupErr
}

func (f *fakeGateway) GetCurrentUser(_ context.Context, token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.meTokens = append(f.meTokens, token)
	return f.meResp, f.meErr
}

func (f *fakeGateway) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.pingErr
}

func (f *fakeGateway) Close() error { return nil }

func (f *fakeGateway) calls() (login, signup int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.loginReqs), len(f.signupReqs)
}

/*************
 * Fake session
 *************/

type fakeSession struct {
	state     session.State
	loginErr  error
	logoutErr error

	logins  []models.User
	logouts int
}

func (f *fakeSession) State() session.State { return f.state }

func (f *fakeSession) Login(_ context.Context, user models.User, _ models.TokenData) error {
	f.logins = append(f.logins, user)
	if f.loginErr != nil {
		return f.loginErr
	}
	f.state = session.State{Status: session.StatusAuthenticated, User: &user}
	return nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.logouts++
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.state = session.State{Status: session.StatusUnauthenticated}
	return nil
}

func (f *fakeSession) UpdateUser(_ context.Context, user models.User) error {
	f.state.User = &user
	return nil
}

/*************
 * Recording alerter / confirmer
 *************/

type alert struct{ title, message string }

type recorder struct {
	alerts  []alert
	answer  bool
	prompts []string
}

func (r *recorder) Alert(title, message string) {
	r.alerts = append(r.alerts, alert{title, message})
}

func (r *recorder) Confirm(title, message string) bool {
	r.prompts = append(r.prompts, title+": "+message)
	return r.answer
}

var (
	ada = models.User{
		ID: 7, FullName: "Ada Lovelace", Email: "ada@example.com", Role: models.RoleStudent,
		IsActive: true, CreatedAt: "2025-01-01T10:00:00", UpdatedAt: "2025-01-01T10:00:00",
	}
	adaTokens = models.TokenData{AccessToken: "acc", RefreshToken: "ref", TokenType: "bearer", ExpiresIn: 1800}
)
