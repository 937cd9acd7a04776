// Package session holds the client-facing "current user" state and the route
// guard policies built on top of it. It is a UX-layer cache of the session
// token: the authoritative check is always the server-side verification done
// per request, never the snapshot kept here.
package session

import (
	"sync"

	"decora/internal/auth"
)

// State enumerates the lifecycle of the session context.
type State int

const (
	// StateUnknown means the persisted token has not been read yet.
	StateUnknown State = iota
	// StateAuthenticated means a token is present and its claims are loaded.
	StateAuthenticated
	// StateAnonymous means no token, or the server rejected the one we had.
	StateAnonymous
)

// UserSnapshot is the denormalized user shape kept for immediate UI use.
type UserSnapshot struct {
	ID           string
	Name         string
	Email        string
	Role         string
	ProfileImage string
}

// Snapshot is an immutable view of the session context. Callers read state
// through the capability queries and never mutate it.
type Snapshot struct {
	state State
	user  *UserSnapshot
}

// Loading reports whether the persisted token has not been resolved yet.
// Dependent UI must defer rendering while this is true.
func (s Snapshot) Loading() bool {
	return s.state == StateUnknown
}

// IsLoggedIn reports whether a session token is held.
func (s Snapshot) IsLoggedIn() bool {
	return s.state == StateAuthenticated
}

// IsAdmin reports whether the held token carries the admin role.
func (s Snapshot) IsAdmin() bool {
	return s.state == StateAuthenticated && s.user != nil && s.user.Role == auth.RoleAdmin
}

// CurrentUser returns a copy of the user snapshot, or nil when anonymous.
func (s Snapshot) CurrentUser() *UserSnapshot {
	if s.state != StateAuthenticated || s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// TokenStorage persists the session token across restarts. Implementations
// wrap whatever the client platform offers (keychain, local storage, a file).
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// Context owns the session state. Every transition is driven by an explicit
// user action or an explicit server signal; the context never expires a token
// on its own by comparing clocks.
type Context struct {
	mu      sync.Mutex
	storage TokenStorage
	token   string
	snap    Snapshot
}

// NewContext returns a context in the Unknown state.
func NewContext(storage TokenStorage) *Context {
	return &Context{
		storage: storage,
		snap:    Snapshot{state: StateUnknown},
	}
}

// Snapshot returns the current immutable view.
func (c *Context) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Token returns the held session token for attaching to outgoing requests,
// or "" when anonymous.
func (c *Context) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Initialize resolves Unknown by reading the persisted token. A present token
// is accepted optimistically: its claims are decoded for display purposes
// without a signature or expiry check, since the server re-verifies on every
// call and Observe401 handles the rejection.
func (c *Context) Initialize() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snap.state != StateUnknown {
		return c.snap
	}

	token, err := c.storage.Load()
	if err != nil || token == "" {
		c.snap = Snapshot{state: StateAnonymous}
		return c.snap
	}

	claims, err := auth.DecodeUnverified(token)
	if err != nil {
		_ = c.storage.Clear()
		c.snap = Snapshot{state: StateAnonymous}
		return c.snap
	}

	c.token = token
	c.snap = Snapshot{
		state: StateAuthenticated,
		user:  &UserSnapshot{ID: claims.UserID, Role: claims.Role},
	}
	return c.snap
}

// LoginSucceeded records a successful login or registration response: the
// token is persisted and the snapshot replaced wholesale.
func (c *Context) LoginSucceeded(token string, user UserSnapshot) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.storage.Save(token)
	c.token = token
	c.snap = Snapshot{state: StateAuthenticated, user: &user}
	return c.snap
}

// Logout clears the persisted token and demotes to Anonymous. Purely
// client-side: stateless tokens need no server call.
func (c *Context) Logout() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.storage.Clear()
	c.token = ""
	c.snap = Snapshot{state: StateAnonymous}
	return c.snap
}

// Observe401 must be called whenever any API response reports an
// authentication failure. The context self-demotes instead of continuing to
// present a stale authenticated UI. Authorization failures (403) must NOT be
// routed here: a valid session with the wrong role stays logged in.
func (c *Context) Observe401() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.storage.Clear()
	c.token = ""
	c.snap = Snapshot{state: StateAnonymous}
	return c.snap
}

// MemoryStorage is an in-process TokenStorage for tests and short-lived clients.
type MemoryStorage struct {
	mu    sync.Mutex
	token string
}

func (m *MemoryStorage) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryStorage) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStorage) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
