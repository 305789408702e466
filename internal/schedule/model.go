package schedule

import "time"

type Category string

const (
	CategoryCardio     Category = "cardio"
	CategoryStrength   Category = "strength"
	CategoryFunctional Category = "functional"
	CategoryMindBody   Category = "mind-body"
)

// Categories in display order.
var Categories = []Category{CategoryCardio, CategoryStrength, CategoryFunctional, CategoryMindBody}

type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

type GymClass struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	IsActive    bool     `json:"is_active"`
}

// ClassSchedule places a class on a weekday. StartTime and EndTime are
// zero-padded "HH:mm", so they sort lexically.
type ClassSchedule struct {
	ID              string    `json:"id"`
	ClassID         string    `json:"class_id"`
	TrainerID       string    `json:"trainer_id,omitempty"`
	Day             Day       `json:"day"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	MaxParticipants int       `json:"max_participants"`
	Room            string    `json:"room"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type CreateClassRequest struct {
	Name        string   `json:"name" binding:"required"`
	Category    Category `json:"category" binding:"required,oneof=cardio strength functional mind-body"`
	Description string   `json:"description"`
	IsActive    *bool    `json:"is_active"`
}

type UpdateClassRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1"`
	Category    *Category `json:"category" binding:"omitempty,oneof=cardio strength functional mind-body"`
	Description *string   `json:"description"`
	IsActive    *bool     `json:"is_active"`
}

func (r UpdateClassRequest) Apply(c *GymClass) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Category != nil {
		c.Category = *r.Category
	}
	if r.Description != nil {
		c.Description = *r.Description
	}
	if r.IsActive != nil {
		c.IsActive = *r.IsActive
	}
}

type CreateScheduleRequest struct {
	ClassID         string `json:"class_id" binding:"required"`
	TrainerID       string `json:"trainer_id"`
	Day             Day    `json:"day" binding:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime       string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime         string `json:"end_time" binding:"required,datetime=15:04"`
	MaxParticipants int    `json:"max_participants" binding:"gte=0"`
	Room            string `json:"room"`
	IsActive        *bool  `json:"is_active"`
}

type UpdateScheduleRequest struct {
	ClassID         *string `json:"class_id" binding:"omitempty,min=1"`
	TrainerID       *string `json:"trainer_id"`
	Day             *Day    `json:"day" binding:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime       *string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime         *string `json:"end_time" binding:"omitempty,datetime=15:04"`
	MaxParticipants *int    `json:"max_participants" binding:"omitempty,gte=0"`
	Room            *string `json:"room"`
	IsActive        *bool   `json:"is_active"`
}

func (r UpdateScheduleRequest) Apply(s *ClassSchedule) {
	if r.ClassID != nil {
		s.ClassID = *r.ClassID
	}
	if r.TrainerID != nil {
		s.TrainerID = *r.TrainerID
	}
	if r.Day != nil {
		s.Day = *r.Day
	}
	if r.StartTime != nil {
		s.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		s.EndTime = *r.EndTime
	}
	if r.MaxParticipants != nil {
		s.MaxParticipants = *r.MaxParticipants
	}
	if r.Room != nil {
		s.Room = *r.Room
	}
	if r.IsActive != nil {
		s.IsActive = *r.IsActive
	}
}
