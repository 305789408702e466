package user

import (
	"time"

	"gymdash/internal/helpers"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStaff   Role = "staff"
	RoleTrainer Role = "trainer"
	RoleMember  Role = "member"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	PasswordHash     string    `json:"-"`
	Role             Role      `json:"role"`
	Gender           Gender    `json:"gender"`
	NIK              string    `json:"nik,omitempty"`
	BirthDate        string    `json:"birth_date,omitempty"`
	BloodType        string    `json:"blood_type,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	EmergencyPhone   string    `json:"emergency_phone,omitempty"`
	Photo            string    `json:"photo,omitempty"`
	Address          string    `json:"address"`
	Notes            string    `json:"notes,omitempty"`
	Avatar           string    `json:"avatar,omitempty"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Age derives years from BirthDate; 0 when unset or unparsable.
func (u User) Age(now time.Time) int {
	birth, err := time.Parse(helpers.DateLayout, u.BirthDate)
	if err != nil {
		return 0
	}
	return helpers.CalculateAge(birth, now)
}

// CanUseDashboard reports whether the role may sign in to the admin dashboard.
func (r Role) CanUseDashboard() bool {
	return r == RoleAdmin || r == RoleStaff
}

// SeedUser is a seed record. Seeds carry plaintext credentials; the store
// hashes them when the seed is copied in.
type SeedUser struct {
	User
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required"`
	Role             Role   `json:"role" binding:"required,oneof=admin staff trainer member"`
	Gender           Gender `json:"gender" binding:"required,oneof=male female"`
	NIK              string `json:"nik"`
	BirthDate        string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	BloodType        string `json:"blood_type" binding:"omitempty,oneof=A B AB O"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	Photo            string `json:"photo"`
	Address          string `json:"address"`
	Notes            string `json:"notes"`
	Avatar           string `json:"avatar"`
	IsActive         *bool  `json:"is_active"`
}

type UpdateUserRequest struct {
	Name             *string `json:"name" binding:"omitempty,min=1"`
	Email            *string `json:"email" binding:"omitempty,email"`
	Phone            *string `json:"phone"`
	Role             *Role   `json:"role" binding:"omitempty,oneof=admin staff trainer member"`
	Gender           *Gender `json:"gender" binding:"omitempty,oneof=male female"`
	NIK              *string `json:"nik"`
	BirthDate        *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	BloodType        *string `json:"blood_type" binding:"omitempty,oneof=A B AB O"`
	EmergencyContact *string `json:"emergency_contact"`
	EmergencyPhone   *string `json:"emergency_phone"`
	Photo            *string `json:"photo"`
	Address          *string `json:"address"`
	Notes            *string `json:"notes"`
	Avatar           *string `json:"avatar"`
	IsActive         *bool   `json:"is_active"`
}

// Apply merges the set fields into u.
func (r UpdateUserRequest) Apply(u *User) {
	setString(&u.Name, r.Name)
	setString(&u.Email, r.Email)
	setString(&u.Phone, r.Phone)
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.Gender != nil {
		u.Gender = *r.Gender
	}
	setString(&u.NIK, r.NIK)
	setString(&u.BirthDate, r.BirthDate)
	setString(&u.BloodType, r.BloodType)
	setString(&u.EmergencyContact, r.EmergencyContact)
	setString(&u.EmergencyPhone, r.EmergencyPhone)
	setString(&u.Photo, r.Photo)
	setString(&u.Address, r.Address)
	setString(&u.Notes, r.Notes)
	setString(&u.Avatar, r.Avatar)
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

type CreateUserResponse struct {
	User     User   `json:"user"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	// bcrypt rejects anything past 72 bytes.
	NewPassword string `json:"new_password" binding:"required,max=72"`
}

type ResetPasswordResponse struct {
	Password string `json:"password"`
}
