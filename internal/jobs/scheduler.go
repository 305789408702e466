// Package jobs runs the periodic background work: the daily sweep that
// reminds members whose membership is about to expire.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"gymdash/internal/gympackage"
	"gymdash/internal/logger"
	"gymdash/internal/membership"
	"gymdash/internal/user"
)

const DefaultReminderSpec = "0 0 8 * * *"

type MembershipSource interface {
	Expiring() []membership.Membership
}

type MemberFinder interface {
	GetByID(id string) (user.User, bool)
}

type PackageFinder interface {
	GetByID(id string) (gympackage.GymPackage, bool)
}

type Mailer interface {
	SendMembershipExpiring(ctx context.Context, email, name, packageName, endDate string, daysLeft int) error
}

type Scheduler struct {
	cron        *cron.Cron
	spec        string
	memberships MembershipSource
	members     MemberFinder
	packages    PackageFinder
	mailer      Mailer
	now         func() time.Time
}

func NewScheduler(spec string, memberships MembershipSource, members MemberFinder, packages PackageFinder, mailer Mailer) *Scheduler {
	if spec == "" {
		spec = DefaultReminderSpec
	}
	return &Scheduler{
		cron:        cron.New(cron.WithSeconds()),
		spec:        spec,
		memberships: memberships,
		members:     members,
		packages:    packages,
		mailer:      mailer,
		now:         time.Now,
	}
}

// Start schedules the sweep. Without a mailer there is nothing to do.
func (s *Scheduler) Start() error {
	if s.mailer == nil {
		logger.Info("Reminder scheduler disabled: no mail queue")
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, func() { s.SweepExpiring(context.Background()) }); err != nil {
		return err
	}

	s.cron.Start()
	logger.Infof("Reminder scheduler started (%s)", s.spec)
	return nil
}

// Stop waits for a running sweep to finish, up to the context deadline.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		logger.Info("Reminder scheduler stop timed out")
	}
}

// SweepExpiring queues one reminder per expiring membership whose member has
// an email address and returns how many were queued.
func (s *Scheduler) SweepExpiring(ctx context.Context) int {
	if s.mailer == nil {
		return 0
	}
	now := s.now()
	queued := 0

	for _, m := range s.memberships.Expiring() {
		member, ok := s.members.GetByID(m.MemberID)
		if !ok || member.Email == "" {
			continue
		}

		packageName := "Membership"
		if pkg, ok := s.packages.GetByID(m.PackageID); ok {
			packageName = pkg.Name
		}
		daysLeft, _ := m.DaysRemaining(now)

		if err := s.mailer.SendMembershipExpiring(ctx, member.Email, member.Name, packageName, m.EndDate, daysLeft); err != nil {
			logger.WithError(err).Error("Queue expiry reminder", "membership_id", m.ID)
			continue
		}
		queued++
	}

	logger.Infof("Expiry reminder sweep queued %d emails", queued)
	return queued
}
