package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdash/internal/storage"
)

func newLoadedStore(t *testing.T) (*Store, *storage.MemoryStore) {
	t.Helper()
	snap := storage.NewMemoryStore()
	store := NewStore(snap)
	require.NoError(t, store.Load(context.Background()))
	return store, snap
}

func addSchedule(t *testing.T, s *Store, classID string, day Day, start, end string) ClassSchedule {
	t.Helper()
	return s.AddSchedule(context.Background(), CreateScheduleRequest{
		ClassID:         classID,
		Day:             day,
		StartTime:       start,
		EndTime:         end,
		MaxParticipants: 20,
		Room:            "Studio A",
	})
}

func TestLoad_InstallsDefaultClasses(t *testing.T) {
	store, _ := newLoadedStore(t)

	assert.Len(t, store.Classes(), 11)
	assert.Empty(t, store.Schedules())

	grouped := store.ClassesByCategory()
	assert.Len(t, grouped[CategoryCardio], 3)
	assert.Len(t, grouped[CategoryStrength], 3)
	assert.Len(t, grouped[CategoryFunctional], 2)
	assert.Len(t, grouped[CategoryMindBody], 3)
}

func TestLoad_RefillsEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	store, snap := newLoadedStore(t)
	for _, c := range store.Classes() {
		_, ok := store.DeleteClass(ctx, c.ID)
		require.True(t, ok)
	}
	assert.Empty(t, store.Classes())

	reloaded := NewStore(snap)
	require.NoError(t, reloaded.Load(ctx))
	assert.Len(t, reloaded.Classes(), 11)
}

func TestLoad_KeepsCustomCatalog(t *testing.T) {
	ctx := context.Background()
	store, snap := newLoadedStore(t)
	store.AddClass(ctx, CreateClassRequest{Name: "Boxing", Category: CategoryFunctional})
	_, ok := store.DeleteClass(ctx, "cls-zumba")
	require.True(t, ok)

	reloaded := NewStore(snap)
	require.NoError(t, reloaded.Load(ctx))
	assert.Len(t, reloaded.Classes(), 11)
	_, ok = reloaded.GetClassByID("cls-zumba")
	assert.False(t, ok)
}

func TestDeleteClass_CascadesToSchedules(t *testing.T) {
	store, _ := newLoadedStore(t)
	ctx := context.Background()

	addSchedule(t, store, "cls-yoga", Monday, "07:00", "08:00")
	addSchedule(t, store, "cls-yoga", Wednesday, "07:00", "08:00")
	other := addSchedule(t, store, "cls-zumba", Monday, "18:00", "19:00")

	removed, ok := store.DeleteClass(ctx, "cls-yoga")
	require.True(t, ok)
	assert.Equal(t, 2, removed)

	_, ok = store.GetClassByID("cls-yoga")
	assert.False(t, ok)
	remaining := store.Schedules()
	require.Len(t, remaining, 1)
	assert.Equal(t, other.ID, remaining[0].ID)

	_, ok = store.DeleteClass(ctx, "cls-yoga")
	assert.False(t, ok)
}

func TestGetSchedulesByDay_SortedActiveOnly(t *testing.T) {
	store, _ := newLoadedStore(t)
	ctx := context.Background()

	addSchedule(t, store, "cls-zumba", Monday, "18:00", "19:00")
	addSchedule(t, store, "cls-yoga", Monday, "06:30", "07:30")
	hidden := addSchedule(t, store, "cls-trx", Monday, "09:00", "10:00")
	addSchedule(t, store, "cls-pilates", Tuesday, "08:00", "09:00")

	inactive := false
	_, ok := store.UpdateSchedule(ctx, hidden.ID, UpdateScheduleRequest{IsActive: &inactive})
	require.True(t, ok)

	monday := store.GetSchedulesByDay(Monday)
	require.Len(t, monday, 2)
	assert.Equal(t, "06:30", monday[0].StartTime)
	assert.Equal(t, "18:00", monday[1].StartTime)
	assert.Len(t, store.ActiveSchedules(), 3)
	assert.Empty(t, store.GetSchedulesByClass("cls-trx"))
}

func TestClassesByCategory_SkipsInactive(t *testing.T) {
	store, _ := newLoadedStore(t)
	inactive := false

	_, ok := store.UpdateClass(context.Background(), "cls-trx", UpdateClassRequest{IsActive: &inactive})
	require.True(t, ok)

	assert.Len(t, store.ClassesByCategory()[CategoryFunctional], 1)
	assert.Len(t, store.ActiveClasses(), 10)
}

func TestUpdateSchedule_RefreshesUpdatedAt(t *testing.T) {
	store, _ := newLoadedStore(t)
	sc := addSchedule(t, store, "cls-yoga", Friday, "07:00", "08:00")
	room := "Studio B"

	updated, ok := store.UpdateSchedule(context.Background(), sc.ID, UpdateScheduleRequest{Room: &room})
	require.True(t, ok)
	assert.Equal(t, "Studio B", updated.Room)
	assert.False(t, updated.UpdatedAt.Before(sc.UpdatedAt))

	_, ok = store.UpdateSchedule(context.Background(), "missing", UpdateScheduleRequest{Room: &room})
	assert.False(t, ok)
	assert.True(t, store.DeleteSchedule(context.Background(), sc.ID))
	assert.False(t, store.DeleteSchedule(context.Background(), sc.ID))
}
