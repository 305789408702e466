package pt

import (
	"context"
	"errors"
	"sync"
	"time"

	"gymdash/internal/helpers"
	"gymdash/internal/metrics"
	"gymdash/internal/storage"
)

const SnapshotName = "pt"

var (
	ErrSubscriptionNotFound = errors.New("pt subscription not found")
	ErrPackageNotFound      = errors.New("pt package not found")
	ErrNoSessionsLeft       = errors.New("all sessions of this subscription are used")
)

type snapshot struct {
	Packages      []Package      `json:"pt_packages"`
	Subscriptions []Subscription `json:"pt_subscriptions"`
	Initialized   bool           `json:"initialized"`
}

// Store owns the PT package catalog and the members' subscriptions.
type Store struct {
	mu            sync.RWMutex
	packages      []Package
	subscriptions []Subscription
	initialized   bool

	snap storage.Snapshotter
	now  func() time.Time
}

func NewStore(snap storage.Snapshotter) *Store {
	return &Store{
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
		s.packages = DefaultPackages()
		s.subscriptions = DefaultSubscriptions()
	} else {
		s.packages = snap.Packages
		s.subscriptions = snap.Subscriptions
	}
	s.initialized = true
	s.persistLocked(ctx)
	return nil
}

func (s *Store) persistLocked(ctx context.Context) {
	storage.Persist(ctx, s.snap, SnapshotName, snapshot{
		Packages:      s.packages,
		Subscriptions: s.subscriptions,
		Initialized:   s.initialized,
	})
}

// Packages

func (s *Store) packageIndexLocked(id string) int {
	for i := range s.packages {
		if s.packages[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Packages() []Package {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Package{}, s.packages...)
}

func (s *Store) ActivePackages() []Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Package, 0)
	for _, p := range s.packages {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) GetPackageByID(id string) (Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.packageIndexLocked(id); i != -1 {
		return s.packages[i], true
	}
	return Package{}, false
}

// AddPackage stores a package. TotalPrice defaults to sessions times the
// per-session price.
func (s *Store) AddPackage(ctx context.Context, req CreatePackageRequest) Package {
	total := req.TotalPrice
	if total == 0 {
		total = int64(req.Sessions) * req.PricePerSession
	}
	p := Package{
		ID:              helpers.GenerateID(),
		Name:            req.Name,
		Sessions:        req.Sessions,
		PricePerSession: req.PricePerSession,
		TotalPrice:      total,
		Description:     req.Description,
		IsActive:        req.IsActive == nil || *req.IsActive,
		CreatedAt:       s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.packages = append(s.packages, p)
	s.persistLocked(ctx)
	return p
}

func (s *Store) UpdatePackage(ctx context.Context, id string, req UpdatePackageRequest) (Package, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.packageIndexLocked(id)
	if i == -1 {
		return Package{}, false
	}
	req.Apply(&s.packages[i])
	s.persistLocked(ctx)
	return s.packages[i], true
}

func (s *Store) DeletePackage(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.packageIndexLocked(id)
	if i == -1 {
		return false
	}
	s.packages = append(s.packages[:i], s.packages[i+1:]...)
	s.persistLocked(ctx)
	return true
}

// Subscriptions

func (s *Store) subscriptionIndexLocked(id string) int {
	for i := range s.subscriptions {
		if s.subscriptions[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) filter(keep func(Subscription) bool) []Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Subscription, 0)
	for _, sub := range s.subscriptions {
		if keep(sub) {
			out = append(out, sub)
		}
	}
	return out
}

func (s *Store) Subscriptions() []Subscription {
	return s.filter(func(Subscription) bool { return true })
}

func (s *Store) ActiveSubscriptions() []Subscription {
	return s.filter(func(sub Subscription) bool { return sub.Status == StatusActive })
}

func (s *Store) GetSubscriptionByID(id string) (Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.subscriptionIndexLocked(id); i != -1 {
		return s.subscriptions[i], true
	}
	return Subscription{}, false
}

func (s *Store) GetSubscriptionsByMember(memberID string) []Subscription {
	return s.filter(func(sub Subscription) bool { return sub.MemberID == memberID })
}

func (s *Store) GetSubscriptionsByTrainer(trainerID string) []Subscription {
	return s.filter(func(sub Subscription) bool { return sub.TrainerID == trainerID })
}

// GetActiveSubscriptionByMember returns the member's first active
// subscription without looking at its dates.
func (s *Store) GetActiveSubscriptionByMember(memberID string) (Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sub := range s.subscriptions {
		if sub.MemberID == memberID && sub.Status == StatusActive {
			return sub, true
		}
	}
	return Subscription{}, false
}

// AddSubscription starts an active subscription with no sessions used.
// TotalSessions falls back to the package's session count.
func (s *Store) AddSubscription(ctx context.Context, req CreateSubscriptionRequest) (Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := req.TotalSessions
	if total == 0 {
		i := s.packageIndexLocked(req.PackageID)
		if i == -1 {
			return Subscription{}, ErrPackageNotFound
		}
		total = s.packages[i].Sessions
	}

	sub := Subscription{
		ID:            helpers.GenerateID(),
		MemberID:      req.MemberID,
		TrainerID:     req.TrainerID,
		PackageID:     req.PackageID,
		TotalSessions: total,
		Status:        StatusActive,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Notes:         req.Notes,
		CreatedAt:     s.now(),
	}
	s.subscriptions = append(s.subscriptions, sub)
	s.persistLocked(ctx)
	return sub, nil
}

func (s *Store) UpdateSubscription(ctx context.Context, id string, req UpdateSubscriptionRequest) (Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.subscriptionIndexLocked(id)
	if i == -1 {
		return Subscription{}, false
	}
	req.Apply(&s.subscriptions[i])
	s.persistLocked(ctx)
	return s.subscriptions[i], true
}

// AddSession consumes one session. Reaching TotalSessions moves the
// subscription to completed in the same step; once every session is used
// further calls change nothing and return ErrNoSessionsLeft.
func (s *Store) AddSession(ctx context.Context, id string) (Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.subscriptionIndexLocked(id)
	if i == -1 {
		return Subscription{}, ErrSubscriptionNotFound
	}
	sub := &s.subscriptions[i]
	if sub.UsedSessions >= sub.TotalSessions {
		return *sub, ErrNoSessionsLeft
	}

	sub.UsedSessions++
	if sub.UsedSessions >= sub.TotalSessions {
		sub.Status = StatusCompleted
	}
	s.persistLocked(ctx)
	metrics.RecordPTSession()
	return *sub, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id string, status Status) (Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.subscriptionIndexLocked(id)
	if i == -1 {
		return Subscription{}, false
	}
	s.subscriptions[i].Status = status
	s.persistLocked(ctx)
	return s.subscriptions[i], true
}

func (s *Store) DeleteSubscription(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.subscriptionIndexLocked(id)
	if i == -1 {
		return false
	}
	s.subscriptions = append(s.subscriptions[:i], s.subscriptions[i+1:]...)
	s.persistLocked(ctx)
	return true
}
