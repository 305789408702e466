package user

import (
	"context"
	"errors"
	"sync"
	"time"

	"gymdash/internal/helpers"
	"gymdash/internal/metrics"
	"gymdash/internal/password"
	"gymdash/internal/storage"
)

const (
	SnapshotName = "users"

	MinPasswordLength = 4
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongPassword    = errors.New("old password is incorrect")
	ErrPasswordTooShort = errors.New("new password must be at least 4 characters")
)

// storedUser keeps the hash in the snapshot while User hides it from JSON
// responses.
type storedUser struct {
	User
	PasswordHash string `json:"password_hash"`
}

type snapshot struct {
	Users       []storedUser `json:"users"`
	Initialized bool         `json:"initialized"`
}

type Store struct {
	mu          sync.RWMutex
	users       []User
	initialized bool

	seed           []SeedUser
	snap           storage.Snapshotter
	passwordLength int
	now            func() time.Time
}

func NewStore(snap storage.Snapshotter, seed []SeedUser, passwordLength int) *Store {
	return &Store{
		seed:           seed,
		snap:           snap,
		passwordLength: passwordLength,
		now:            time.Now,
	}
}

// Load restores the persisted collection. The first load copies the seed in;
// later loads only backfill avatars that are missing locally but present in
// the seed.
func (s *Store) Load(ctx context.Context) error {
	var snap snapshot
	found := storage.Restore(ctx, s.snap, SnapshotName, &snap)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !found || !snap.Initialized {
		users, err := s.seedUsers()
		if err != nil {
			return err
		}
		s.users = users
		s.initialized = true
		s.persistLocked(ctx)
		return nil
	}

	s.users = make([]User, 0, len(snap.Users))
	for _, su := range snap.Users {
		u := su.User
		u.PasswordHash = su.PasswordHash
		s.users = append(s.users, u)
	}
	s.initialized = true
	s.backfillAvatarsLocked()
	s.persistLocked(ctx)
	return nil
}

func (s *Store) seedUsers() ([]User, error) {
	users := make([]User, 0, len(s.seed))
	for _, su := range s.seed {
		u := su.User
		hashed, err := password.Hash(su.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hashed
		users = append(users, u)
	}
	return users, nil
}

func (s *Store) backfillAvatarsLocked() {
	seedAvatars := make(map[string]string, len(s.seed))
	for _, su := range s.seed {
		seedAvatars[su.ID] = su.Avatar
	}
	for i := range s.users {
		if s.users[i].Avatar == "" && seedAvatars[s.users[i].ID] != "" {
			s.users[i].Avatar = seedAvatars[s.users[i].ID]
		}
	}
}

func (s *Store) persistLocked(ctx context.Context) {
	snap := snapshot{Initialized: s.initialized, Users: make([]storedUser, 0, len(s.users))}
	active := 0
	for _, u := range s.users {
		snap.Users = append(snap.Users, storedUser{User: u, PasswordHash: u.PasswordHash})
		if u.Role == RoleMember && u.IsActive {
			active++
		}
	}
	storage.Persist(ctx, s.snap, SnapshotName, snap)
	metrics.SetActiveMembers(active)
}

func (s *Store) indexLocked(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) filter(keep func(User) bool) []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, 0)
	for _, u := range s.users {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}

func (s *Store) All() []User {
	return s.filter(func(User) bool { return true })
}

func (s *Store) GetByID(id string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i != -1 {
		return s.users[i], true
	}
	return User{}, false
}

func (s *Store) GetByRole(role Role) []User {
	return s.filter(func(u User) bool { return u.Role == role })
}

func (s *Store) Members() []User  { return s.GetByRole(RoleMember) }
func (s *Store) Staff() []User    { return s.GetByRole(RoleStaff) }
func (s *Store) Trainers() []User { return s.GetByRole(RoleTrainer) }
func (s *Store) Admins() []User   { return s.GetByRole(RoleAdmin) }

func (s *Store) ActiveMembers() []User {
	return s.filter(func(u User) bool { return u.Role == RoleMember && u.IsActive })
}

// Add creates a user with a generated password. The plaintext is returned
// once and never stored.
func (s *Store) Add(ctx context.Context, req CreateUserRequest) (User, string, error) {
	plain := password.Generate(s.passwordLength)
	hashed, err := password.Hash(plain)
	if err != nil {
		return User{}, "", err
	}

	now := s.now()
	u := User{
		ID:               helpers.GenerateID(),
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		PasswordHash:     hashed,
		Role:             req.Role,
		Gender:           req.Gender,
		NIK:              req.NIK,
		BirthDate:        req.BirthDate,
		BloodType:        req.BloodType,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
		Photo:            req.Photo,
		Address:          req.Address,
		Notes:            req.Notes,
		Avatar:           req.Avatar,
		IsActive:         req.IsActive == nil || *req.IsActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	s.mu.Lock()
	s.users = append(s.users, u)
	s.persistLocked(ctx)
	s.mu.Unlock()

	metrics.RecordUserCreated(string(u.Role))
	return u, plain, nil
}

// Update merges req into the user. A missing id is a no-op.
func (s *Store) Update(ctx context.Context, id string, req UpdateUserRequest) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return User{}, false
	}
	req.Apply(&s.users[i])
	s.users[i].UpdatedAt = s.now()
	s.persistLocked(ctx)
	return s.users[i], true
}

// Delete removes the user; memberships, payments and other references to it
// are left in place.
func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return false
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	s.persistLocked(ctx)
	return true
}

func (s *Store) ResetPassword(ctx context.Context, id string) (string, error) {
	plain := password.Generate(s.passwordLength)
	hashed, err := password.Hash(plain)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return "", ErrUserNotFound
	}
	s.users[i].PasswordHash = hashed
	s.users[i].UpdatedAt = s.now()
	s.persistLocked(ctx)
	return plain, nil
}

func (s *Store) ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return ErrUserNotFound
	}
	if !password.Check(s.users[i].PasswordHash, oldPassword) {
		return ErrWrongPassword
	}
	if len([]rune(newPassword)) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	hashed, err := password.Hash(newPassword)
	if err != nil {
		return err
	}
	s.users[i].PasswordHash = hashed
	s.users[i].UpdatedAt = s.now()
	s.persistLocked(ctx)
	return nil
}

// CheckPassword reports whether plain matches the stored hash of id.
func (s *Store) CheckPassword(id, plain string) bool {
	u, ok := s.GetByID(id)
	return ok && password.Check(u.PasswordHash, plain)
}

func (s *Store) ToggleActive(ctx context.Context, id string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return User{}, false
	}
	s.users[i].IsActive = !s.users[i].IsActive
	s.users[i].UpdatedAt = s.now()
	s.persistLocked(ctx)
	return s.users[i], true
}
