package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymdash/internal/gympackage"
	"gymdash/internal/membership"
	"gymdash/internal/user"
)

var testNow = time.Date(2026, time.October, 16, 8, 0, 0, 0, time.UTC)

type MockMailer struct{ mock.Mock }

func (m *MockMailer) SendMembershipExpiring(ctx context.Context, email, name, packageName, endDate string, daysLeft int) error {
	return m.Called(ctx, email, name, packageName, endDate, daysLeft).Error(0)
}

type stubMemberships []membership.Membership

func (s stubMemberships) Expiring() []membership.Membership { return s }

type stubMembers map[string]user.User

func (s stubMembers) GetByID(id string) (user.User, bool) {
	u, ok := s[id]
	return u, ok
}

type stubPackages map[string]gympackage.GymPackage

func (s stubPackages) GetByID(id string) (gympackage.GymPackage, bool) {
	p, ok := s[id]
	return p, ok
}

func newScheduler(mailer Mailer) *Scheduler {
	expiring := stubMemberships{
		{ID: "ms-1", MemberID: "u-1", PackageID: "pkg-1", EndDate: "2026-10-18", Status: membership.StatusActive},
		{ID: "ms-2", MemberID: "u-2", PackageID: "pkg-gone", EndDate: "2026-10-23", Status: membership.StatusActive},
		{ID: "ms-3", MemberID: "u-no-email", PackageID: "pkg-1", EndDate: "2026-10-20", Status: membership.StatusActive},
		{ID: "ms-4", MemberID: "u-missing", PackageID: "pkg-1", EndDate: "2026-10-20", Status: membership.StatusActive},
	}
	members := stubMembers{
		"u-1":        {ID: "u-1", Name: "Putri", Email: "putri@example.com"},
		"u-2":        {ID: "u-2", Name: "Fajar", Email: "fajar@example.com"},
		"u-no-email": {ID: "u-no-email", Name: "Anon"},
	}
	packages := stubPackages{"pkg-1": {ID: "pkg-1", Name: "Bulanan"}}

	s := NewScheduler("", expiring, members, packages, mailer)
	s.now = func() time.Time { return testNow }
	return s
}

func TestSweepExpiring(t *testing.T) {
	mailer := &MockMailer{}
	ctx := context.Background()
	mailer.On("SendMembershipExpiring", ctx, "putri@example.com", "Putri", "Bulanan", "2026-10-18", 2).Return(nil)
	mailer.On("SendMembershipExpiring", ctx, "fajar@example.com", "Fajar", "Membership", "2026-10-23", 7).Return(nil)

	s := newScheduler(mailer)

	assert.Equal(t, 2, s.SweepExpiring(ctx))
	mailer.AssertExpectations(t)
	mailer.AssertNumberOfCalls(t, "SendMembershipExpiring", 2)
}

func TestSweepExpiring_QueueFailureNotCounted(t *testing.T) {
	mailer := &MockMailer{}
	mailer.On("SendMembershipExpiring", mock.Anything, "putri@example.com", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)
	mailer.On("SendMembershipExpiring", mock.Anything, "fajar@example.com", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	s := newScheduler(mailer)

	assert.Equal(t, 1, s.SweepExpiring(context.Background()))
}

func TestStartAndStop(t *testing.T) {
	s := newScheduler(&MockMailer{})
	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}

func TestStart_RejectsBadSpec(t *testing.T) {
	s := NewScheduler("not a cron spec", stubMemberships{}, stubMembers{}, stubPackages{}, &MockMailer{})
	assert.Error(t, s.Start())
}

func TestStart_NoMailer(t *testing.T) {
	s := NewScheduler("", stubMemberships{}, stubMembers{}, stubPackages{}, nil)
	require.NoError(t, s.Start())
	assert.Empty(t, s.cron.Entries())
}
