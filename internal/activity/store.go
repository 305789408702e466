package activity

import (
	"context"
	"sync"
	"time"

	"gymdash/internal/helpers"
	"gymdash/internal/metrics"
	"gymdash/internal/storage"
)

const (
	SnapshotName = "activityLog"

	RecentLimit = 50
)

type snapshot struct {
	Logs []Entry `json:"logs"`
}

// Store is the append-only audit trail, newest entry first.
type Store struct {
	mu     sync.RWMutex
	logs   []Entry
	snap   storage.Snapshotter
	actors ActorSource
	now    func() time.Time
}

func NewStore(snap storage.Snapshotter, actors ActorSource) *Store {
	return &Store{
		snap:   snap,
		actors: actors,
		now:    time.Now,
	}
}

func (s *Store) Load(ctx context.Context) error {
	var snap snapshot
	storage.Restore(ctx, s.snap, SnapshotName, &snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = snap.Logs
	if s.logs == nil {
		s.logs = []Entry{}
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) {
	storage.Persist(ctx, s.snap, SnapshotName, snapshot{Logs: s.logs})
}

// Add prepends an entry attributed to the current actor, or to SystemActor
// when nobody is signed in.
func (s *Store) Add(ctx context.Context, rec Record) Entry {
	actor := SystemActor
	if s.actors != nil {
		if a, ok := s.actors.CurrentActor(); ok {
			actor = a
		}
	}

	e := Entry{
		ID:         helpers.GenerateSortableID(),
		UserID:     actor.ID,
		UserName:   actor.Name,
		UserRole:   actor.Role,
		Action:     rec.Action,
		TargetType: rec.TargetType,
		TargetID:   rec.TargetID,
		TargetName: rec.TargetName,
		Details:    rec.Details,
		Timestamp:  s.now(),
	}

	s.mu.Lock()
	s.logs = append([]Entry{e}, s.logs...)
	s.persistLocked(ctx)
	s.mu.Unlock()

	metrics.RecordActivity(string(rec.Action))
	return e
}

func (s *Store) filter(keep func(Entry) bool) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0)
	for _, e := range s.logs {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) All() []Entry {
	return s.filter(func(Entry) bool { return true })
}

func (s *Store) Recent() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.logs)
	if n > RecentLimit {
		n = RecentLimit
	}
	out := make([]Entry, n)
	copy(out, s.logs[:n])
	return out
}

func (s *Store) Today() []Entry {
	return s.ByDate(helpers.TodayISO(s.now()))
}

// ByDate matches entries whose UTC date is date (YYYY-MM-DD).
func (s *Store) ByDate(date string) []Entry {
	return s.filter(func(e Entry) bool { return helpers.DateKey(e.Timestamp) == date })
}

func (s *Store) ByUser(userID string) []Entry {
	return s.filter(func(e Entry) bool { return e.UserID == userID })
}

func (s *Store) ByAction(action Action) []Entry {
	return s.filter(func(e Entry) bool { return e.Action == action })
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = []Entry{}
	s.persistLocked(ctx)
}
