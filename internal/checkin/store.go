package checkin

import (
	"context"
	"errors"
	"sync"
	"time"

	"gymdash/internal/helpers"
	"gymdash/internal/metrics"
	"gymdash/internal/storage"
)

const SnapshotName = "checkins"

var ErrAlreadyCheckedIn = errors.New("member has already checked in today")

type snapshot struct {
	CheckIns []CheckIn `json:"checkins"`
}

// Store keeps gym visits newest first. Days are compared on the UTC date of
// the check-in time.
type Store struct {
	mu       sync.RWMutex
	checkins []CheckIn
	snap     storage.Snapshotter
	now      func() time.Time
}

func NewStore(snap storage.Snapshotter) *Store {
	return &Store{
		snap: snap,
		now:  time.Now,
	}
}

func (s *Store) Load(ctx context.Context) error {
	var snap snapshot
	storage.Restore(ctx, s.snap, SnapshotName, &snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkins = snap.CheckIns
	if s.checkins == nil {
		s.checkins = []CheckIn{}
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) {
	storage.Persist(ctx, s.snap, SnapshotName, snapshot{CheckIns: s.checkins})
}

func (s *Store) filter(keep func(CheckIn) bool) []CheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CheckIn, 0)
	for _, c := range s.checkins {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Store) All() []CheckIn {
	return s.filter(func(CheckIn) bool { return true })
}

func (s *Store) Today() []CheckIn {
	return s.GetByDate(helpers.TodayISO(s.now()))
}

// Active lists today's check-ins that are still open.
func (s *Store) Active() []CheckIn {
	today := helpers.TodayISO(s.now())
	return s.filter(func(c CheckIn) bool { return c.Open() && helpers.DateKey(c.CheckInTime) == today })
}

func (s *Store) GetByDate(date string) []CheckIn {
	return s.filter(func(c CheckIn) bool { return helpers.DateKey(c.CheckInTime) == date })
}

func (s *Store) GetByMember(memberID string) []CheckIn {
	return s.filter(func(c CheckIn) bool { return c.MemberID == memberID })
}

func (s *Store) GetByID(id string) (CheckIn, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.checkins {
		if c.ID == id {
			return c, true
		}
	}
	return CheckIn{}, false
}

// IsCheckedInToday reports whether the member has an open check-in today.
func (s *Store) IsCheckedInToday(memberID string) bool {
	for _, c := range s.Active() {
		if c.MemberID == memberID {
			return true
		}
	}
	return false
}

// CheckIn records a visit. A member gets one check-in per day: a second one
// on the same date fails with ErrAlreadyCheckedIn, even after checking out.
func (s *Store) CheckIn(ctx context.Context, memberID, memberName, notes string) (CheckIn, error) {
	now := s.now()
	today := helpers.DateKey(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.checkins {
		if c.MemberID == memberID && helpers.DateKey(c.CheckInTime) == today {
			return CheckIn{}, ErrAlreadyCheckedIn
		}
	}

	c := CheckIn{
		ID:          helpers.GenerateSortableID(),
		MemberID:    memberID,
		MemberName:  memberName,
		CheckInTime: now,
		Notes:       notes,
	}
	s.checkins = append([]CheckIn{c}, s.checkins...)
	s.persistLocked(ctx)
	metrics.RecordCheckIn()
	return c, nil
}

// CheckOut stamps the check-out time. A missing id is a no-op.
func (s *Store) CheckOut(ctx context.Context, id string) (CheckIn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.checkins {
		if s.checkins[i].ID == id {
			now := s.now()
			s.checkins[i].CheckOutTime = &now
			s.persistLocked(ctx)
			return s.checkins[i], true
		}
	}
	return CheckIn{}, false
}
