package session

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"decora/internal/auth"
)

func issueToken(t *testing.T) (string, uuid.UUID) {
	t.Helper()
	svc, err := auth.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	userID := uuid.New()
	token, err := svc.Issue(userID, auth.RoleUser)
	require.NoError(t, err)
	return token, userID
}

func TestContext_StartsUnknown(t *testing.T) {
	ctx := NewContext(&MemoryStorage{})
	snap := ctx.Snapshot()

	assert.True(t, snap.Loading())
	assert.False(t, snap.IsLoggedIn())
	assert.Nil(t, snap.CurrentUser())
}

func TestContext_Initialize(t *testing.T) {
	t.Run("empty storage resolves to anonymous", func(t *testing.T) {
		ctx := NewContext(&MemoryStorage{})
		snap := ctx.Initialize()

		assert.False(t, snap.Loading())
		assert.False(t, snap.IsLoggedIn())
		assert.Empty(t, ctx.Token())
	})

	t.Run("persisted token resolves to authenticated", func(t *testing.T) {
		token, userID := issueToken(t)
		storage := &MemoryStorage{}
		require.NoError(t, storage.Save(token))

		ctx := NewContext(storage)
		snap := ctx.Initialize()

		assert.True(t, snap.IsLoggedIn())
		assert.Equal(t, token, ctx.Token())
		require.NotNil(t, snap.CurrentUser())
		assert.Equal(t, userID.String(), snap.CurrentUser().ID)
	})

	t.Run("undecodable token is dropped", func(t *testing.T) {
		storage := &MemoryStorage{}
		require.NoError(t, storage.Save("corrupt"))

		ctx := NewContext(storage)
		snap := ctx.Initialize()

		assert.False(t, snap.IsLoggedIn())
		stored, _ := storage.Load()
		assert.Empty(t, stored)
	})

	t.Run("initialize is idempotent", func(t *testing.T) {
		ctx := NewContext(&MemoryStorage{})
		first := ctx.Initialize()
		second := ctx.Initialize()
		assert.Equal(t, first, second)
	})
}

func TestContext_LoginLogout(t *testing.T) {
	token, userID := issueToken(t)
	storage := &MemoryStorage{}
	ctx := NewContext(storage)
	ctx.Initialize()

	snap := ctx.LoginSucceeded(token, UserSnapshot{
		ID:    userID.String(),
		Name:  "Test User",
		Email: "test@example.com",
		Role:  auth.RoleUser,
	})

	assert.True(t, snap.IsLoggedIn())
	assert.False(t, snap.IsAdmin())
	stored, _ := storage.Load()
	assert.Equal(t, token, stored)

	snap = ctx.Logout()

	assert.False(t, snap.IsLoggedIn())
	assert.Empty(t, ctx.Token())
	stored, _ = storage.Load()
	assert.Empty(t, stored)
}

func TestContext_Observe401(t *testing.T) {
	token, userID := issueToken(t)
	storage := &MemoryStorage{}
	ctx := NewContext(storage)
	ctx.Initialize()
	ctx.LoginSucceeded(token, UserSnapshot{ID: userID.String(), Role: auth.RoleUser})

	snap := ctx.Observe401()

	assert.False(t, snap.IsLoggedIn())
	assert.Empty(t, ctx.Token())
	stored, _ := storage.Load()
	assert.Empty(t, stored)
}

// A 403 means the session is valid but under-privileged. The caller keeps the
// session; only real authentication failures demote it.
func TestContext_ForbiddenDoesNotDemote(t *testing.T) {
	token, userID := issueToken(t)
	ctx := NewContext(&MemoryStorage{})
	ctx.Initialize()
	ctx.LoginSucceeded(token, UserSnapshot{ID: userID.String(), Role: auth.RoleUser})

	// Simulate a request that came back 403: no Observe401 call is made.
	snap := ctx.Snapshot()

	assert.True(t, snap.IsLoggedIn())
	assert.Equal(t, token, ctx.Token())
}

func TestCurrentUser_ReturnsCopy(t *testing.T) {
	ctx := NewContext(&MemoryStorage{})
	ctx.Initialize()
	ctx.LoginSucceeded("token", UserSnapshot{ID: "abc", Name: "Original", Role: auth.RoleAdmin})

	snap := ctx.Snapshot()
	user := snap.CurrentUser()
	require.NotNil(t, user)
	user.Name = "Mutated"

	assert.Equal(t, "Original", snap.CurrentUser().Name)
}

type failingStorage struct{}

func (failingStorage) Load() (string, error) { return "", errors.New("backend unavailable") }
func (failingStorage) Save(string) error     { return errors.New("backend unavailable") }
func (failingStorage) Clear() error          { return errors.New("backend unavailable") }

func TestContext_StorageFailureResolvesAnonymous(t *testing.T) {
	ctx := NewContext(failingStorage{})
	snap := ctx.Initialize()

	assert.False(t, snap.Loading())
	assert.False(t, snap.IsLoggedIn())
}

func TestGuards(t *testing.T) {
	unknown := Snapshot{state: StateUnknown}
	anonymous := Snapshot{state: StateAnonymous}
	user := Snapshot{state: StateAuthenticated, user: &UserSnapshot{Role: auth.RoleUser}}
	admin := Snapshot{state: StateAuthenticated, user: &UserSnapshot{Role: auth.RoleAdmin}}

	tests := []struct {
		name      string
		snap      Snapshot
		authWant  Decision
		adminWant Decision
	}{
		{"unknown", unknown, DecisionWait, DecisionWait},
		{"anonymous", anonymous, DecisionRedirectLogin, DecisionRedirectLogin},
		{"user", user, DecisionAllow, DecisionRedirectLogin},
		{"admin", admin, DecisionAllow, DecisionAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.authWant, RequireAuthenticated(tt.snap))
			assert.Equal(t, tt.adminWant, RequireAdmin(tt.snap))
		})
	}
}

func TestVisibleNav(t *testing.T) {
	items := []NavItem{
		{Label: "Dashboard", Path: "/dashboard"},
		{Label: "Manage Projects", Path: "/admin/projects", AdminOnly: true},
		{Label: "Profile", Path: "/profile"},
	}

	admin := Snapshot{state: StateAuthenticated, user: &UserSnapshot{Role: auth.RoleAdmin}}
	user := Snapshot{state: StateAuthenticated, user: &UserSnapshot{Role: auth.RoleUser}}

	assert.Len(t, VisibleNav(admin, items), 3)

	visible := VisibleNav(user, items)
	assert.Len(t, visible, 2)
	for _, item := range visible {
		assert.False(t, item.AdminOnly)
	}
}
