package membership

import (
	"context"
	"sync"
	"time"

	"gymdash/internal/helpers"
	"gymdash/internal/storage"
)

const SnapshotName = "memberships"

type snapshot struct {
	Memberships []Membership `json:"memberships"`
	Initialized bool         `json:"initialized"`
}

// Store keeps memberships. Status is only ever changed explicitly; nothing
// here moves a membership to expired when its end date passes.
type Store struct {
	mu          sync.RWMutex
	memberships []Membership
	initialized bool

	seed []Membership
	snap storage.Snapshotter
	now  func() time.Time
}

func NewStore(snap storage.Snapshotter, seed []Membership) *Store {
	return &Store{
		seed: seed,
		snap: snap,
		now:  time.Now,
	}
}

func (s *Store) Load(ctx context.Context) error {
	var snap snapshot
	found := storage.Restore(ctx, s.snap, SnapshotName, &snap)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !found || !snap.Initialized {
		s.memberships = append([]Membership(nil), s.seed...)
	} else {
		s.memberships = snap.Memberships
	}
	s.initialized = true
	s.persistLocked(ctx)
	return nil
}

func (s *Store) persistLocked(ctx context.Context) {
	storage.Persist(ctx, s.snap, SnapshotName, snapshot{Memberships: s.memberships, Initialized: s.initialized})
}

func (s *Store) indexLocked(id string) int {
	for i := range s.memberships {
		if s.memberships[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) filter(keep func(Membership) bool) []Membership {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Membership, 0)
	for _, m := range s.memberships {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) All() []Membership {
	return s.filter(func(Membership) bool { return true })
}

func (s *Store) Active() []Membership {
	return s.filter(func(m Membership) bool { return m.Status == StatusActive })
}

func (s *Store) Expired() []Membership {
	return s.filter(func(m Membership) bool { return m.Status == StatusExpired })
}

// Expiring lists active memberships ending within ExpiringWindowDays,
// today included.
func (s *Store) Expiring() []Membership {
	now := s.now()
	return s.filter(func(m Membership) bool { return m.IsExpiring(now) })
}

func (s *Store) GetByID(id string) (Membership, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i != -1 {
		return s.memberships[i], true
	}
	return Membership{}, false
}

func (s *Store) GetByMember(memberID string) []Membership {
	return s.filter(func(m Membership) bool { return m.MemberID == memberID })
}

// GetActiveByMember returns the first membership of the member whose status
// is active. Dates are not checked.
func (s *Store) GetActiveByMember(memberID string) (Membership, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.memberships {
		if m.MemberID == memberID && m.Status == StatusActive {
			return m, true
		}
	}
	return Membership{}, false
}

func (s *Store) Add(ctx context.Context, req CreateMembershipRequest) Membership {
	status := req.Status
	if status == "" {
		status = StatusActive
	}
	m := Membership{
		ID:        helpers.GenerateID(),
		MemberID:  req.MemberID,
		PackageID: req.PackageID,
		TrainerID: req.TrainerID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    status,
		Notes:     req.Notes,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships = append(s.memberships, m)
	s.persistLocked(ctx)
	return m
}

func (s *Store) Update(ctx context.Context, id string, req UpdateMembershipRequest) (Membership, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return Membership{}, false
	}
	req.Apply(&s.memberships[i])
	s.persistLocked(ctx)
	return s.memberships[i], true
}

func (s *Store) UpdateStatus(ctx context.Context, id string, status Status) (Membership, bool) {
	return s.Update(ctx, id, UpdateMembershipRequest{Status: &status})
}

func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return false
	}
	s.memberships = append(s.memberships[:i], s.memberships[i+1:]...)
	s.persistLocked(ctx)
	return true
}
