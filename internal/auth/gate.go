package auth

import (
	"context"
	"errors"
	"sync"

	"gymdash/internal/activity"
	"gymdash/internal/logger"
	"gymdash/internal/metrics"
	"gymdash/internal/storage"
	"gymdash/internal/user"
)

const SnapshotName = "auth"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotSignedIn        = errors.New("not signed in")
)

// UserSource is the live users store the gate authenticates against.
type UserSource interface {
	All() []user.User
	CheckPassword(id, plain string) bool
}

type snapshot struct {
	CurrentUser *user.User `json:"current_user"`
}

// Gate holds the single signed-in dashboard session. Only admin and staff
// accounts can sign in.
type Gate struct {
	mu      sync.RWMutex
	current *user.User

	users UserSource
	seed  []user.SeedUser
	snap  storage.Snapshotter
}

func NewGate(users UserSource, seed []user.SeedUser, snap storage.Snapshotter) *Gate {
	return &Gate{
		users: users,
		seed:  seed,
		snap:  snap,
	}
}

// Load restores the session that was open when the process stopped.
func (g *Gate) Load(ctx context.Context) error {
	var snap snapshot
	storage.Restore(ctx, g.snap, SnapshotName, &snap)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = snap.CurrentUser
	return nil
}

func (g *Gate) persistLocked(ctx context.Context) {
	storage.Persist(ctx, g.snap, SnapshotName, snapshot{CurrentUser: g.current})
}

// Login checks the users store first. The seed is consulted only for an
// email the store does not know, so a changed password cannot be bypassed
// with the seeded one.
func (g *Gate) Login(ctx context.Context, email, plain string) (user.User, error) {
	u, ok := g.match(email, plain)
	if !ok {
		metrics.RecordLogin(false)
		logger.WithFields(map[string]interface{}{"email": email}).Info("Dashboard login rejected")
		return user.User{}, ErrInvalidCredentials
	}

	g.mu.Lock()
	g.current = &u
	g.persistLocked(ctx)
	g.mu.Unlock()

	metrics.RecordLogin(true)
	logger.WithFields(map[string]interface{}{"user_id": u.ID, "role": u.Role}).Info("Dashboard login")
	return u, nil
}

func (g *Gate) match(email, plain string) (user.User, bool) {
	known := false
	for _, u := range g.users.All() {
		if u.Email != email {
			continue
		}
		known = true
		if u.Role.CanUseDashboard() && g.users.CheckPassword(u.ID, plain) {
			return u, true
		}
	}
	if known {
		return user.User{}, false
	}

	for _, su := range g.seed {
		if su.Email == email && su.Password == plain && su.Role.CanUseDashboard() {
			return su.User, true
		}
	}
	return user.User{}, false
}

func (g *Gate) Logout(ctx context.Context) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = nil
	g.persistLocked(ctx)
}

// UpdateCurrentUser merges profile changes into the session copy. It does
// nothing when nobody is signed in.
func (g *Gate) UpdateCurrentUser(ctx context.Context, req user.UpdateUserRequest) (user.User, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.current == nil {
		return user.User{}, false
	}
	req.Apply(g.current)
	g.persistLocked(ctx)
	return *g.current, true
}

func (g *Gate) CurrentUser() (user.User, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.current == nil {
		return user.User{}, false
	}
	return *g.current, true
}

func (g *Gate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current != nil
}

func (g *Gate) IsAdmin() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current != nil && g.current.Role == user.RoleAdmin
}

// CurrentActor attributes activity log entries to the signed-in user.
func (g *Gate) CurrentActor() (activity.Actor, bool) {
	u, ok := g.CurrentUser()
	if !ok {
		return activity.Actor{}, false
	}
	return activity.Actor{ID: u.ID, Name: u.Name, Role: string(u.Role)}, true
}
