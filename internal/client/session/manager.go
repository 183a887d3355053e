// Package session owns the client's authentication lifecycle: the one-shot
// startup bootstrap, login/register/logout transitions, and profile
// refresh. It is the sole writer of the token store; every other component
// only ever reads the credential.
package session

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/dmitrijs2005/taskboard/internal/client/api"
	"github.com/dmitrijs2005/taskboard/internal/client/models"
	"github.com/dmitrijs2005/taskboard/internal/client/tokenstore"
	"github.com/dmitrijs2005/taskboard/internal/logging"
)

// RegisterInput mirrors the POST /auth/register payload.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type tokenPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// loginResponse accepts both backend variants: the envelope data
// {token:{access_token,...}, user} and a bare token object.
type loginResponse struct {
	Token tokenPayload `json:"token"`
	User  *models.User `json:"user"`

	AccessToken string `json:"access_token"`
}

func (r *loginResponse) accessToken() string {
	if r.Token.AccessToken != "" {
		return r.Token.AccessToken
	}
	return r.AccessToken
}

// Snapshot is an immutable view of the session at one point in time.
type Snapshot struct {
	Token string
	User  *models.User

	// Ready flips to true exactly once, after the startup bootstrap
	// attempt finishes, and never reverts.
	Ready bool
}

// Authenticated reports whether a validated identity is present.
func (s Snapshot) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

// Manager holds the current session state and performs all auth
// transitions. Readers subscribe for change notifications instead of
// polling.
type Manager struct {
	client *api.Client
	store  tokenstore.Store
	log    logging.Logger

	mu    sync.Mutex
	token string
	user  *models.User
	ready bool

	nextSubID int
	subs      map[int]func(Snapshot)
}

func NewManager(client *api.Client, store tokenstore.Store, log logging.Logger) *Manager {
	return &Manager{
		client: client,
		store:  store,
		log:    log,
		subs:   make(map[int]func(Snapshot)),
	}
}

// Current returns the session state as of now.
func (m *Manager) Current() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registers fn to run after every state change and returns an
// unsubscribe function. fn is called outside the manager's lock.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Bootstrap resolves the persisted credential into an initial session
// state: anonymous when nothing is stored, authenticated when the stored
// token still names a user, anonymous with a cleared store otherwise.
//
// It runs at most once per process and never reports failure outward; any
// error during validation just demotes the session to anonymous.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.mu.Lock()
	if m.ready {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	stored, err := m.store.Read(ctx)
	if err != nil {
		m.log.Warn(ctx, "credential read failed during bootstrap", "error", err)
		stored = ""
	}
	if stored == "" {
		m.finishBootstrap("", nil)
		return
	}

	user, err := m.fetchProfile(ctx, stored)
	if err != nil {
		m.log.Info(ctx, "stored credential rejected, starting anonymous", "error", err)
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.log.Error(ctx, "failed to clear stored credential", "error", clearErr)
		}
		m.finishBootstrap("", nil)
		return
	}

	m.finishBootstrap(stored, user)
}

// Login exchanges username/password for a bearer token. The backend
// expects the OAuth2 password-grant form encoding, not JSON. On success
// the token is persisted and the identity set (with a follow-up profile
// fetch when the login payload carries no user). On failure the session
// is left untouched and the backend's error returned verbatim.
func (m *Manager) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := api.Do[loginResponse](ctx, m.client, "/auth/login", api.Options{
		Method:    http.MethodPost,
		Body:      form,
		Anonymous: true,
		Fallback:  "Login failed",
	})
	if err != nil {
		return err
	}

	token := resp.accessToken()
	if token == "" {
		return &api.Error{Message: "Login succeeded but no token was returned", Status: 502}
	}

	user := resp.User
	if user == nil {
		user, err = m.fetchProfile(ctx, token)
		if err != nil {
			return err
		}
	}

	if err := m.store.Write(ctx, token); err != nil {
		return fmt.Errorf("persist credential: %w", err)
	}

	m.update(token, user)
	return nil
}

// Register creates the account, then performs the Login transition with the
// same credentials. A failure at either step propagates; if registration
// succeeds but login fails the session stays anonymous (the account exists
// server-side, no local session was established).
func (m *Manager) Register(ctx context.Context, input RegisterInput) error {
	_, err := api.Do[models.User](ctx, m.client, "/auth/register", api.Options{
		Method:    http.MethodPost,
		Body:      input,
		Anonymous: true,
		Fallback:  "Registration failed",
	})
	if err != nil {
		return err
	}

	return m.Login(ctx, input.Username, input.Password)
}

// Logout drops the credential and identity unconditionally. It cannot
// fail: a store error is logged and the in-memory state cleared anyway.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear stored credential", "error", err)
	}
	m.update("", nil)
}

// RefreshUser re-fetches the profile for the stored credential and
// replaces the identity. Without a credential it just clears the identity.
// A fetch failure propagates and leaves both credential and identity
// unchanged; a transient error must not log the user out.
func (m *Manager) RefreshUser(ctx context.Context) error {
	token, err := m.store.Read(ctx)
	if err != nil {
		m.log.Warn(ctx, "credential read failed during refresh", "error", err)
		token = ""
	}
	if token == "" {
		m.update("", nil)
		return nil
	}

	user, err := m.fetchProfile(ctx, token)
	if err != nil {
		return err
	}

	m.update(token, user)
	return nil
}

func (m *Manager) fetchProfile(ctx context.Context, token string) (*models.User, error) {
	user, err := api.Do[models.User](ctx, m.client, "/auth/me", api.Options{
		Token:    token,
		Fallback: "Failed to fetch user profile",
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{Token: m.token, User: m.user, Ready: m.ready}
}

func (m *Manager) update(token string, user *models.User) {
	m.mu.Lock()
	m.token = token
	m.user = user
	snap := m.snapshotLocked()
	subs := m.subscribersLocked()
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (m *Manager) finishBootstrap(token string, user *models.User) {
	m.mu.Lock()
	m.token = token
	m.user = user
	m.ready = true
	snap := m.snapshotLocked()
	subs := m.subscribersLocked()
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (m *Manager) subscribersLocked() []func(Snapshot) {
	subs := make([]func(Snapshot), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	return subs
}
