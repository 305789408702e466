package gympackage

import (
	"context"
	"sync"
	"time"

	"gymdash/internal/helpers"
	"gymdash/internal/storage"
)

const SnapshotName = "packages"

type snapshot struct {
	Packages    []GymPackage `json:"packages"`
	Initialized bool         `json:"initialized"`
}

type Store struct {
	mu          sync.RWMutex
	packages    []GymPackage
	initialized bool

	seed []GymPackage
	snap storage.Snapshotter
	now  func() time.Time
}

func NewStore(snap storage.Snapshotter, seed []GymPackage) *Store {
	return &Store{
		seed: seed,
		snap: snap,
		now:  time.Now,
	}
}

// Load restores the persisted packages, copying the seed in on first run.
func (s *Store) Load(ctx context.Context) error {
	var snap snapshot
	found := storage.Restore(ctx, s.snap, SnapshotName, &snap)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !found || !snap.Initialized {
		s.packages = append([]GymPackage(nil), s.seed...)
	} else {
		s.packages = snap.Packages
	}
	s.initialized = true
	s.persistLocked(ctx)
	return nil
}

func (s *Store) persistLocked(ctx context.Context) {
	storage.Persist(ctx, s.snap, SnapshotName, snapshot{Packages: s.packages, Initialized: s.initialized})
}

func (s *Store) indexLocked(id string) int {
	for i := range s.packages {
		if s.packages[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) All() []GymPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]GymPackage{}, s.packages...)
}

func (s *Store) Active() []GymPackage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]GymPackage, 0)
	for _, p := range s.packages {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) GetByID(id string) (GymPackage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i != -1 {
		return s.packages[i], true
	}
	return GymPackage{}, false
}

func (s *Store) Add(ctx context.Context, req CreatePackageRequest) GymPackage {
	p := GymPackage{
		ID:           helpers.GenerateID(),
		Name:         req.Name,
		Description:  req.Description,
		DurationDays: req.DurationDays,
		Price:        req.Price,
		Features:     append([]string{}, req.Features...),
		IsActive:     req.IsActive == nil || *req.IsActive,
		CreatedAt:    s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages = append(s.packages, p)
	s.persistLocked(ctx)
	return p
}

func (s *Store) Update(ctx context.Context, id string, req UpdatePackageRequest) (GymPackage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return GymPackage{}, false
	}
	req.Apply(&s.packages[i])
	s.persistLocked(ctx)
	return s.packages[i], true
}

// Delete removes the package. Memberships referencing it keep their
// packageId.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return false
	}
	s.packages = append(s.packages[:i], s.packages[i+1:]...)
	s.persistLocked(ctx)
	return true
}
