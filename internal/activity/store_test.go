package activity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdash/internal/storage"
)

type fixedActor struct {
	actor Actor
	ok    bool
}

func (f *fixedActor) CurrentActor() (Actor, bool) { return f.actor, f.ok }

func newTestStore(t *testing.T, actors ActorSource) (*Store, *storage.MemoryStore) {
	t.Helper()
	snap := storage.NewMemoryStore()
	store := NewStore(snap, actors)
	require.NoError(t, store.Load(context.Background()))
	return store, snap
}

func TestAdd_UsesCurrentActor(t *testing.T) {
	actors := &fixedActor{actor: Actor{ID: "u-staff-001", Name: "Staff", Role: "staff"}, ok: true}
	store, _ := newTestStore(t, actors)

	e := store.Add(context.Background(), Record{
		Action:     ActionCreate,
		TargetType: TargetMember,
		TargetID:   "u-1",
		TargetName: "Budi",
		Details:    "Menambahkan member baru",
	})

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "u-staff-001", e.UserID)
	assert.Equal(t, "Staff", e.UserName)
	assert.Equal(t, "staff", e.UserRole)
	assert.False(t, e.Timestamp.IsZero())
}

func TestAdd_FallsBackToSystem(t *testing.T) {
	tests := []struct {
		name   string
		actors ActorSource
	}{
		{"nil source", nil},
		{"signed out", &fixedActor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t, tt.actors)
			e := store.Add(context.Background(), Record{Action: ActionUpdate})

			assert.Equal(t, "", e.UserID)
			assert.Equal(t, "System", e.UserName)
			assert.Equal(t, "admin", e.UserRole)
		})
	}
}

func TestAdd_NewestFirst(t *testing.T) {
	store, _ := newTestStore(t, nil)
	ctx := context.Background()

	first := store.Add(ctx, Record{Action: ActionCreate, TargetName: "first"})
	second := store.Add(ctx, Record{Action: ActionDelete, TargetName: "second"})

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

func TestRecent_CapsAtLimit(t *testing.T) {
	store, _ := newTestStore(t, nil)
	ctx := context.Background()
	for i := 0; i < RecentLimit+5; i++ {
		store.Add(ctx, Record{Action: ActionUpdate})
	}

	assert.Len(t, store.Recent(), RecentLimit)
	assert.Len(t, store.All(), RecentLimit+5)
}

func TestQueries(t *testing.T) {
	actors := &fixedActor{actor: Actor{ID: "u-admin-001", Name: "Admin", Role: "admin"}, ok: true}
	store, _ := newTestStore(t, actors)
	ctx := context.Background()

	store.now = func() time.Time { return time.Date(2026, time.October, 15, 10, 0, 0, 0, time.UTC) }
	store.Add(ctx, Record{Action: ActionCheckIn})

	store.now = func() time.Time { return time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC) }
	store.Add(ctx, Record{Action: ActionCreate})
	actors.ok = false
	store.Add(ctx, Record{Action: ActionCreate})

	assert.Len(t, store.Today(), 2)
	assert.Len(t, store.ByDate("2026-10-15"), 1)
	assert.Len(t, store.ByUser("u-admin-001"), 2)
	assert.Len(t, store.ByUser(""), 1)
	assert.Len(t, store.ByAction(ActionCreate), 2)
	assert.Empty(t, store.ByAction(ActionResetPassword))
}

func TestClear_PersistsEmptyLog(t *testing.T) {
	store, snap := newTestStore(t, nil)
	ctx := context.Background()
	store.Add(ctx, Record{Action: ActionCreate})
	store.Clear(ctx)

	assert.Empty(t, store.All())

	reloaded := NewStore(snap, nil)
	require.NoError(t, reloaded.Load(ctx))
	assert.Empty(t, reloaded.All())
}

func TestLoad_RestoresEntries(t *testing.T) {
	store, snap := newTestStore(t, nil)
	ctx := context.Background()
	e := store.Add(ctx, Record{Action: ActionToggleActive, TargetName: "Budi"})

	reloaded := NewStore(snap, nil)
	require.NoError(t, reloaded.Load(ctx))

	all := reloaded.All()
	require.Len(t, all, 1)
	assert.Equal(t, e.ID, all[0].ID)
	assert.Equal(t, "Budi", all[0].TargetName)
}
