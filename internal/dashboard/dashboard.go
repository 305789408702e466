// Package dashboard aggregates the headline numbers shown on the dashboard
// landing screen from the individual stores.
package dashboard

import (
	"time"

	"gymdash/internal/activity"
	"gymdash/internal/checkin"
	"gymdash/internal/helpers"
	"gymdash/internal/membership"
	"gymdash/internal/payment"
	"gymdash/internal/user"
)

// RecentActivityLimit is how many log entries the overview carries.
const RecentActivityLimit = 5

type UserSource interface {
	Members() []user.User
	ActiveMembers() []user.User
	Staff() []user.User
	Trainers() []user.User
}

type PaymentSource interface {
	MonthlyRevenue() int64
	Pending() []payment.Payment
	RevenueByMonth() payment.ChartData
}

type MembershipSource interface {
	Expiring() []membership.Membership
}

type CheckInSource interface {
	Today() []checkin.CheckIn
	Active() []checkin.CheckIn
}

type ActivitySource interface {
	Recent() []activity.Entry
}

type Stats struct {
	TotalMembers        int   `json:"total_members"`
	ActiveMembers       int   `json:"active_members"`
	TotalStaff          int   `json:"total_staff"`
	TotalTrainers       int   `json:"total_trainers"`
	MonthlyRevenue      int64 `json:"monthly_revenue"`
	PendingPayments     int   `json:"pending_payments"`
	ExpiringMemberships int   `json:"expiring_memberships"`
	NewMembersThisMonth int   `json:"new_members_this_month"`
}

type Overview struct {
	Stats          Stats                   `json:"stats"`
	RevenueChart   payment.ChartData       `json:"revenue_chart"`
	TodayCheckIns  int                     `json:"today_checkins"`
	ActiveCheckIns int                     `json:"active_checkins"`
	Expiring       []membership.Membership `json:"expiring"`
	RecentActivity []activity.Entry        `json:"recent_activity"`
}

type Service struct {
	users       UserSource
	payments    PaymentSource
	memberships MembershipSource
	checkins    CheckInSource
	logs        ActivitySource
	now         func() time.Time
}

func NewService(users UserSource, payments PaymentSource, memberships MembershipSource, checkins CheckInSource, logs ActivitySource) *Service {
	return &Service{
		users:       users,
		payments:    payments,
		memberships: memberships,
		checkins:    checkins,
		logs:        logs,
		now:         time.Now,
	}
}

func (s *Service) Stats() Stats {
	members := s.users.Members()
	now := s.now()

	newThisMonth := 0
	for _, m := range members {
		if helpers.SameMonth(m.CreatedAt, now) {
			newThisMonth++
		}
	}

	return Stats{
		TotalMembers:        len(members),
		ActiveMembers:       len(s.users.ActiveMembers()),
		TotalStaff:          len(s.users.Staff()),
		TotalTrainers:       len(s.users.Trainers()),
		MonthlyRevenue:      s.payments.MonthlyRevenue(),
		PendingPayments:     len(s.payments.Pending()),
		ExpiringMemberships: len(s.memberships.Expiring()),
		NewMembersThisMonth: newThisMonth,
	}
}

func (s *Service) Overview() Overview {
	recent := s.logs.Recent()
	if len(recent) > RecentActivityLimit {
		recent = recent[:RecentActivityLimit]
	}

	return Overview{
		Stats:          s.Stats(),
		RevenueChart:   s.payments.RevenueByMonth(),
		TodayCheckIns:  len(s.checkins.Today()),
		ActiveCheckIns: len(s.checkins.Active()),
		Expiring:       s.memberships.Expiring(),
		RecentActivity: recent,
	}
}
