package schedule

import (
	"context"
	"sort"
	"sync"
	"time"

	"gymdash/internal/helpers"
	"gymdash/internal/storage"
)

const SnapshotName = "classSchedules"

type snapshot struct {
	Classes   []GymClass      `json:"gym_classes"`
	Schedules []ClassSchedule `json:"schedules"`
}

// Store owns the class catalog and the weekly timetable. Deleting a class
// deletes its schedules.
type Store struct {
	mu        sync.RWMutex
	classes   []GymClass
	schedules []ClassSchedule
	snap      storage.Snapshotter
	now       func() time.Time
}

func NewStore(snap storage.Snapshotter) *Store {
	return &Store{
		snap: snap,
		now:  time.Now,
	}
}

// Load restores classes and schedules. An empty catalog is refilled with
// DefaultClasses on every load, not only the first.
func (s *Store) Load(ctx context.Context) error {
	var snap snapshot
	storage.Restore(ctx, s.snap, SnapshotName, &snap)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.classes = snap.Classes
	if len(s.classes) == 0 {
		s.classes = DefaultClasses()
	}
	s.schedules = snap.Schedules
	if s.schedules == nil {
		s.schedules = []ClassSchedule{}
	}
	s.persistLocked(ctx)
	return nil
}

func (s *Store) persistLocked(ctx context.Context) {
	storage.Persist(ctx, s.snap, SnapshotName, snapshot{Classes: s.classes, Schedules: s.schedules})
}

// Classes

func (s *Store) classIndexLocked(id string) int {
	for i := range s.classes {
		if s.classes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) Classes() []GymClass {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]GymClass{}, s.classes...)
}

func (s *Store) ActiveClasses() []GymClass {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]GymClass, 0)
	for _, c := range s.classes {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// ClassesByCategory groups active classes. Every category is present, even
// when empty.
func (s *Store) ClassesByCategory() map[Category][]GymClass {
	grouped := make(map[Category][]GymClass, len(Categories))
	for _, cat := range Categories {
		grouped[cat] = []GymClass{}
	}
	for _, c := range s.ActiveClasses() {
		grouped[c.Category] = append(grouped[c.Category], c)
	}
	return grouped
}

func (s *Store) GetClassByID(id string) (GymClass, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.classIndexLocked(id); i != -1 {
		return s.classes[i], true
	}
	return GymClass{}, false
}

func (s *Store) AddClass(ctx context.Context, req CreateClassRequest) GymClass {
	c := GymClass{
		ID:          helpers.GenerateID(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.classes = append(s.classes, c)
	s.persistLocked(ctx)
	return c
}

func (s *Store) UpdateClass(ctx context.Context, id string, req UpdateClassRequest) (GymClass, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.classIndexLocked(id)
	if i == -1 {
		return GymClass{}, false
	}
	req.Apply(&s.classes[i])
	s.persistLocked(ctx)
	return s.classes[i], true
}

// DeleteClass removes the class and every schedule that references it.
// It returns how many schedules went with it.
func (s *Store) DeleteClass(ctx context.Context, id string) (removed int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.classIndexLocked(id)
	if i == -1 {
		return 0, false
	}
	s.classes = append(s.classes[:i], s.classes[i+1:]...)

	kept := s.schedules[:0]
	for _, sc := range s.schedules {
		if sc.ClassID == id {
			removed++
			continue
		}
		kept = append(kept, sc)
	}
	s.schedules = kept
	s.persistLocked(ctx)
	return removed, true
}

// Schedules

func (s *Store) scheduleIndexLocked(id string) int {
	for i := range s.schedules {
		if s.schedules[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) filter(keep func(ClassSchedule) bool) []ClassSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ClassSchedule, 0)
	for _, sc := range s.schedules {
		if keep(sc) {
			out = append(out, sc)
		}
	}
	return out
}

func (s *Store) Schedules() []ClassSchedule {
	return s.filter(func(ClassSchedule) bool { return true })
}

func (s *Store) ActiveSchedules() []ClassSchedule {
	return s.filter(func(sc ClassSchedule) bool { return sc.IsActive })
}

// GetSchedulesByDay lists the day's active schedules by start time.
func (s *Store) GetSchedulesByDay(day Day) []ClassSchedule {
	out := s.filter(func(sc ClassSchedule) bool { return sc.IsActive && sc.Day == day })
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}

func (s *Store) GetSchedulesByClass(classID string) []ClassSchedule {
	return s.filter(func(sc ClassSchedule) bool { return sc.IsActive && sc.ClassID == classID })
}

func (s *Store) GetScheduleByID(id string) (ClassSchedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.scheduleIndexLocked(id); i != -1 {
		return s.schedules[i], true
	}
	return ClassSchedule{}, false
}

func (s *Store) AddSchedule(ctx context.Context, req CreateScheduleRequest) ClassSchedule {
	now := s.now()
	sc := ClassSchedule{
		ID:              helpers.GenerateID(),
		ClassID:         req.ClassID,
		TrainerID:       req.TrainerID,
		Day:             req.Day,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		MaxParticipants: req.MaxParticipants,
		Room:            req.Room,
		IsActive:        req.IsActive == nil || *req.IsActive,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules = append(s.schedules, sc)
	s.persistLocked(ctx)
	return sc
}

func (s *Store) UpdateSchedule(ctx context.Context, id string, req UpdateScheduleRequest) (ClassSchedule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.scheduleIndexLocked(id)
	if i == -1 {
		return ClassSchedule{}, false
	}
	req.Apply(&s.schedules[i])
	s.schedules[i].UpdatedAt = s.now()
	s.persistLocked(ctx)
	return s.schedules[i], true
}

func (s *Store) DeleteSchedule(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.scheduleIndexLocked(id)
	if i == -1 {
		return false
	}
	s.schedules = append(s.schedules[:i], s.schedules[i+1:]...)
	s.persistLocked(ctx)
	return true
}
