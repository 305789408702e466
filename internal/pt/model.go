package pt

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Package is a bundle of personal-training sessions.
type Package struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Sessions        int       `json:"sessions"`
	PricePerSession int64     `json:"price_per_session"`
	TotalPrice      int64     `json:"total_price"`
	Description     string    `json:"description"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

// Subscription is a member's purchase of a Package with a trainer.
type Subscription struct {
	ID            string    `json:"id"`
	MemberID      string    `json:"member_id"`
	TrainerID     string    `json:"trainer_id"`
	PackageID     string    `json:"pt_package_id"`
	TotalSessions int       `json:"total_sessions"`
	UsedSessions  int       `json:"used_sessions"`
	Status        Status    `json:"status"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}

func (s Subscription) RemainingSessions() int {
	return s.TotalSessions - s.UsedSessions
}

type CreatePackageRequest struct {
	Name            string `json:"name" binding:"required"`
	Sessions        int    `json:"sessions" binding:"required,gt=0"`
	PricePerSession int64  `json:"price_per_session" binding:"gte=0"`
	TotalPrice      int64  `json:"total_price" binding:"gte=0"`
	Description     string `json:"description"`
	IsActive        *bool  `json:"is_active"`
}

type UpdatePackageRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1"`
	Sessions        *int    `json:"sessions" binding:"omitempty,gt=0"`
	PricePerSession *int64  `json:"price_per_session" binding:"omitempty,gte=0"`
	TotalPrice      *int64  `json:"total_price" binding:"omitempty,gte=0"`
	Description     *string `json:"description"`
	IsActive        *bool   `json:"is_active"`
}

func (r UpdatePackageRequest) Apply(p *Package) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Sessions != nil {
		p.Sessions = *r.Sessions
	}
	if r.PricePerSession != nil {
		p.PricePerSession = *r.PricePerSession
	}
	if r.TotalPrice != nil {
		p.TotalPrice = *r.TotalPrice
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.IsActive != nil {
		p.IsActive = *r.IsActive
	}
}

type CreateSubscriptionRequest struct {
	MemberID      string `json:"member_id" binding:"required"`
	TrainerID     string `json:"trainer_id" binding:"required"`
	PackageID     string `json:"pt_package_id" binding:"required"`
	TotalSessions int    `json:"total_sessions" binding:"gte=0"`
	StartDate     string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate       string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Notes         string `json:"notes"`
}

type UpdateSubscriptionRequest struct {
	TrainerID     *string `json:"trainer_id" binding:"omitempty,min=1"`
	TotalSessions *int    `json:"total_sessions" binding:"omitempty,gt=0"`
	StartDate     *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate       *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Notes         *string `json:"notes"`
}

func (r UpdateSubscriptionRequest) Apply(s *Subscription) {
	if r.TrainerID != nil {
		s.TrainerID = *r.TrainerID
	}
	if r.TotalSessions != nil {
		s.TotalSessions = *r.TotalSessions
	}
	if r.StartDate != nil {
		s.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		s.EndDate = *r.EndDate
	}
	if r.Notes != nil {
		s.Notes = *r.Notes
	}
}

type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required,oneof=active completed expired cancelled"`
}
