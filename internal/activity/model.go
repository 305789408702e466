package activity

import (
	"context"
	"time"
)

type Action string

const (
	ActionCreate        Action = "create"
	ActionUpdate        Action = "update"
	ActionDelete        Action = "delete"
	ActionResetPassword Action = "reset_password"
	ActionToggleActive  Action = "toggle_active"
	ActionCheckIn       Action = "checkin"
)

// Target types recorded on entries.
const (
	TargetMember     = "member"
	TargetStaff      = "staff"
	TargetTrainer    = "trainer"
	TargetPackage    = "package"
	TargetMembership = "membership"
	TargetPayment    = "payment"
	TargetCheckIn    = "checkin"
	TargetPTPackage  = "pt_package"
	TargetPTSession  = "pt_subscription"
	TargetClass      = "class"
	TargetSchedule   = "schedule"
)

type Entry struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	UserName   string    `json:"user_name"`
	UserRole   string    `json:"user_role"`
	Action     Action    `json:"action"`
	TargetType string    `json:"target_type"`
	TargetID   string    `json:"target_id"`
	TargetName string    `json:"target_name"`
	Details    string    `json:"details"`
	Timestamp  time.Time `json:"timestamp"`
}

// Record is what callers supply; the actor and timestamp are filled in by
// the store.
type Record struct {
	Action     Action
	TargetType string
	TargetID   string
	TargetName string
	Details    string
}

type Actor struct {
	ID   string
	Name string
	Role string
}

// ActorSource reports who is performing the current action.
type ActorSource interface {
	CurrentActor() (Actor, bool)
}

// SystemActor is used when nobody is signed in.
var SystemActor = Actor{Name: "System", Role: "admin"}

// Recorder is implemented by Store; handlers depend on it to log mutations.
type Recorder interface {
	Add(ctx context.Context, rec Record) Entry
}
