package membership

import (
	"time"

	"gymdash/internal/helpers"
)

type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
	StatusPending Status = "pending"
	StatusFrozen  Status = "frozen"
)

// ExpiringWindowDays bounds the "expiring soon" view.
const ExpiringWindowDays = 7

type Membership struct {
	ID        string    `json:"id"`
	MemberID  string    `json:"member_id"`
	PackageID string    `json:"package_id"`
	TrainerID string    `json:"trainer_id,omitempty"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// DaysRemaining counts days until EndDate (UTC midnight). ok is false when
// EndDate does not parse.
func (m Membership) DaysRemaining(now time.Time) (days int, ok bool) {
	end, err := time.Parse(helpers.DateLayout, m.EndDate)
	if err != nil {
		return 0, false
	}
	return helpers.DaysRemaining(end, now), true
}

func (m Membership) IsExpiring(now time.Time) bool {
	if m.Status != StatusActive {
		return false
	}
	days, ok := m.DaysRemaining(now)
	return ok && days >= 0 && days <= ExpiringWindowDays
}

type CreateMembershipRequest struct {
	MemberID  string `json:"member_id" binding:"required"`
	PackageID string `json:"package_id" binding:"required"`
	TrainerID string `json:"trainer_id"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Status    Status `json:"status" binding:"omitempty,oneof=active expired pending frozen"`
	Notes     string `json:"notes"`
}

type UpdateMembershipRequest struct {
	MemberID  *string `json:"member_id" binding:"omitempty,min=1"`
	PackageID *string `json:"package_id" binding:"omitempty,min=1"`
	TrainerID *string `json:"trainer_id"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Status    *Status `json:"status" binding:"omitempty,oneof=active expired pending frozen"`
	Notes     *string `json:"notes"`
}

func (r UpdateMembershipRequest) Apply(m *Membership) {
	if r.MemberID != nil {
		m.MemberID = *r.MemberID
	}
	if r.PackageID != nil {
		m.PackageID = *r.PackageID
	}
	if r.TrainerID != nil {
		m.TrainerID = *r.TrainerID
	}
	if r.StartDate != nil {
		m.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		m.EndDate = *r.EndDate
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.Notes != nil {
		m.Notes = *r.Notes
	}
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required,oneof=active expired pending frozen"`
}
