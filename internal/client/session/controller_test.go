package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/crammer/internal/client/models"
	"github.com/dmitrijs2005/crammer/internal/client/store"
	"github.com/dmitrijs2005/crammer/internal/logging"
)

// ---- fake store ----

type fakeStore struct {
	accessToken string
	user        *models.User

	storeTokensErr error
	storeUserErr   error
	clearErr       error

	calls []string

	// onStoreUser runs inside StoreUser, before it returns.
	onStoreUser func()
}

func (f *fakeStore) StoreTokens(_ context.Context, tokens models.TokenData) error {
	f.calls = append(f.calls, "tokens")
	if f.storeTokensErr != nil {
		return f.storeTokensErr
	}
	f.accessToken = tokens.AccessToken
	return nil
}

func (f *fakeStore) StoreUser(_ context.Context, user models.User) error {
	f.calls = append(f.calls, "user")
	if f.onStoreUser != nil {
		f.onStoreUser()
	}
	if f.storeUserErr != nil {
		return f.storeUserErr
	}
	f.user = &user
	return nil
}

func (f *fakeStore) AccessToken(context.Context) string { return f.accessToken }

func (f *fakeStore) User(context.Context) *models.User { return f.user }

func (f *fakeStore) Clear(context.Context) error {
	f.calls = append(f.calls, "clear")
	if f.clearErr != nil {
		return f.clearErr
	}
	f.accessToken, f.user = "", nil
	return nil
}

var (
	alice  = models.User{ID: 1, FullName: "Alice Smith", Email: "alice@example.com", Role: models.RoleStudent}
	tokens = models.TokenData{AccessToken: "acc", RefreshToken: "ref", TokenType: "bearer", ExpiresIn: 1800}
)

func recordStates(c *Controller) *[]State {
	var got []State
	c.Subscribe(func(s State) { got = append(got, s) })
	return &got
}

// ---- TESTS ----

func TestNewController_StartsUnknownAndLoading(t *testing.T) {
	c := NewController(&fakeStore{}, logging.Nop())

	s := c.State()
	assert.Equal(t, StatusUnknown, s.Status)
	assert.True(t, s.Loading)
	assert.Nil(t, s.User)
	assert.False(t, s.IsAuthenticated())
}

func TestCheckAuth(t *testing.T) {
	tests := []struct {
		name   string
		store  *fakeStore
		want   Status
		wantID int64
	}{
		{name: "no token", store: &fakeStore{}, want: StatusUnauthenticated},
		{name: "no token but user cached", store: &fakeStore{user: &alice}, want: StatusUnauthenticated},
		{name: "token without user is logged out", store: &fakeStore{accessToken: "acc"}, want: StatusUnauthenticated},
		{name: "token and user", store: &fakeStore{accessToken: "acc", user: &alice}, want: StatusAuthenticated, wantID: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(tt.store, logging.Nop())
			states := recordStates(c)

			c.CheckAuth(context.Background())

			s := c.State()
			assert.Equal(t, tt.want, s.Status)
			assert.False(t, s.Loading)
			if tt.want == StatusAuthenticated {
				require.NotNil(t, s.User)
				assert.Equal(t, tt.wantID, s.User.ID)
			} else {
				assert.Nil(t, s.User)
			}
			require.Len(t, *states, 1)
			assert.Equal(t, tt.want, (*states)[0].Status)
			assert.NotContains(t, tt.store.calls, "clear", "check must not repair or wipe storage")
		})
	}
}

func TestLogin_PersistsTokensThenUserThenFlipsState(t *testing.T) {
	fs := &fakeStore{}
	c := NewController(fs, logging.Nop())
	states := recordStates(c)

	fs.onStoreUser = func() {
		assert.False(t, c.State().IsAuthenticated(), "state must not flip before the user is stored")
	}

	require.NoError(t, c.Login(context.Background(), alice, tokens))

	assert.Equal(t, []string{"tokens", "user"}, fs.calls)
	s := c.State()
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "Alice Smith", s.User.FullName)
	require.Len(t, *states, 1)
	assert.True(t, (*states)[0].IsAuthenticated())
}

func TestLogin_TokenFailure_StateUnchanged(t *testing.T) {
	boom := errors.New("disk full")
	fs := &fakeStore{storeTokensErr: boom}
	c := NewController(fs, logging.Nop())
	c.CheckAuth(context.Background())
	states := recordStates(c)

	err := c.Login(context.Background(), alice, tokens)
	require.ErrorIs(t, err, boom)

	assert.Equal(t, []string{"tokens"}, fs.calls, "user must not be written after token failure")
	assert.Equal(t, StatusUnauthenticated, c.State().Status)
	assert.Empty(t, *states, "observers must never see an authenticated state")
}

func TestLogin_EmptyAccessToken_Refused(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, store.MemoryDSN, logging.Nop())
	require.NoError(t, err)
	defer st.Close()

	c := NewController(st, logging.Nop())
	c.CheckAuth(ctx)
	states := recordStates(c)

	noAccess := tokens
	noAccess.AccessToken = ""
	for _, td := range []models.TokenData{{}, noAccess} {
		err := c.Login(ctx, alice, td)
		require.ErrorIs(t, err, ErrNoAccessToken)
	}

	assert.Equal(t, StatusUnauthenticated, c.State().Status)
	assert.Empty(t, *states)
	assert.Empty(t, st.RefreshToken(ctx), "nothing is written for refused credentials")
	assert.Nil(t, st.User(ctx))

	restarted := NewController(st, logging.Nop())
	restarted.CheckAuth(ctx)
	assert.Equal(t, c.State().Status, restarted.State().Status)
}

func TestLogin_UserFailure_StateUnchanged(t *testing.T) {
	boom := errors.New("disk full")
	fs := &fakeStore{storeUserErr: boom}
	c := NewController(fs, logging.Nop())
	states := recordStates(c)

	err := c.Login(context.Background(), alice, tokens)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "store user")

	assert.Equal(t, StatusUnknown, c.State().Status)
	assert.Empty(t, *states)
}

func TestLogout_ClearsAndResets(t *testing.T) {
	fs := &fakeStore{}
	c := NewController(fs, logging.Nop())
	require.NoError(t, c.Login(context.Background(), alice, tokens))
	states := recordStates(c)

	require.NoError(t, c.Logout(context.Background()))

	assert.Equal(t, StatusUnauthenticated, c.State().Status)
	assert.Nil(t, c.User())
	assert.Empty(t, fs.accessToken)
	require.Len(t, *states, 1)
	assert.Equal(t, StatusUnauthenticated, (*states)[0].Status)
}

func TestLogout_WithoutSession_IsIdempotent(t *testing.T) {
	c := NewController(&fakeStore{}, logging.Nop())

	require.NoError(t, c.Logout(context.Background()))
	require.NoError(t, c.Logout(context.Background()))
	assert.Equal(t, StatusUnauthenticated, c.State().Status)
}

func TestLogout_ClearFailure_FailsClosed(t *testing.T) {
	fs := &fakeStore{}
	c := NewController(fs, logging.Nop())
	require.NoError(t, c.Login(context.Background(), alice, tokens))

	fs.clearErr = errors.New("locked")
	states := recordStates(c)

	require.Error(t, c.Logout(context.Background()))
	assert.True(t, c.State().IsAuthenticated())
	assert.Empty(t, *states, "no state change, so no navigation")
}

func TestUpdateUser(t *testing.T) {
	fs := &fakeStore{}
	c := NewController(fs, logging.Nop())

	require.NoError(t, c.UpdateUser(context.Background(), alice))
	assert.Nil(t, fs.user, "ignored while logged out")
	assert.Empty(t, fs.calls)

	require.NoError(t, c.Login(context.Background(), alice, tokens))
	renamed := alice
	renamed.FullName = "Alice Jones"
	states := recordStates(c)

	require.NoError(t, c.UpdateUser(context.Background(), renamed))
	assert.Equal(t, "Alice Jones", c.User().FullName)
	assert.Equal(t, "Alice Jones", fs.user.FullName)
	require.Len(t, *states, 1)
	assert.True(t, (*states)[0].IsAuthenticated())

	fs.storeUserErr = errors.New("disk full")
	require.Error(t, c.UpdateUser(context.Background(), alice))
	assert.Equal(t, "Alice Jones", c.User().FullName)
}

func TestSubscribe_OrderAndUnsubscribe(t *testing.T) {
	c := NewController(&fakeStore{}, logging.Nop())

	var order []string
	c.Subscribe(func(State) { order = append(order, "first") })
	unsub := c.Subscribe(func(State) { order = append(order, "second") })
	c.Subscribe(func(State) { order = append(order, "third") })

	c.CheckAuth(context.Background())
	assert.Equal(t, []string{"first", "second", "third"}, order)

	order = nil
	unsub()
	c.CheckAuth(context.Background())
	assert.Equal(t, []string{"first", "third"}, order)
}

func TestState_ReturnsCopy(t *testing.T) {
	c := NewController(&fakeStore{}, logging.Nop())
	require.NoError(t, c.Login(context.Background(), alice, tokens))

	s := c.State()
	s.User.FullName = "Mallory"

	assert.Equal(t, "Alice Smith", c.User().FullName)
}

func TestController_WithSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, store.MemoryDSN, logging.Nop())
	require.NoError(t, err)
	defer st.Close()

	c := NewController(st, logging.Nop())
	require.NoError(t, c.Login(ctx, alice, tokens))

	assert.Equal(t, "acc", st.AccessToken(ctx))
	assert.Equal(t, "ref", st.RefreshToken(ctx))
	require.NotNil(t, st.User(ctx))
	assert.Equal(t, alice, *st.User(ctx))

	restarted := NewController(st, logging.Nop())
	restarted.CheckAuth(ctx)
	assert.True(t, restarted.State().IsAuthenticated())
	assert.Equal(t, alice, *restarted.User())

	require.NoError(t, restarted.Logout(ctx))
	assert.Empty(t, st.AccessToken(ctx))
	assert.Nil(t, st.User(ctx))
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "unknown", StatusUnknown.String())
	assert.Equal(t, "unauthenticated", StatusUnauthenticated.String())
	assert.Equal(t, "authenticated", StatusAuthenticated.String())
}
