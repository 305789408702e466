package dashboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymdash/internal/activity"
	"gymdash/internal/checkin"
	"gymdash/internal/membership"
	"gymdash/internal/payment"
	"gymdash/internal/user"
)

var testNow = time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

type MockUsers struct{ mock.Mock }

func (m *MockUsers) Members() []user.User {
	return m.Called().Get(0).([]user.User)
}

func (m *MockUsers) ActiveMembers() []user.User {
	return m.Called().Get(0).([]user.User)
}

func (m *MockUsers) Staff() []user.User {
	return m.Called().Get(0).([]user.User)
}

func (m *MockUsers) Trainers() []user.User {
	return m.Called().Get(0).([]user.User)
}

type MockPayments struct{ mock.Mock }

func (m *MockPayments) MonthlyRevenue() int64 {
	return m.Called().Get(0).(int64)
}

func (m *MockPayments) Pending() []payment.Payment {
	return m.Called().Get(0).([]payment.Payment)
}

func (m *MockPayments) RevenueByMonth() payment.ChartData {
	return m.Called().Get(0).(payment.ChartData)
}

type stubMemberships []membership.Membership

func (s stubMemberships) Expiring() []membership.Membership { return s }

type stubCheckIns struct{ today, active []checkin.CheckIn }

func (s stubCheckIns) Today() []checkin.CheckIn  { return s.today }
func (s stubCheckIns) Active() []checkin.CheckIn { return s.active }

type stubLogs []activity.Entry

func (s stubLogs) Recent() []activity.Entry { return s }

func newService(t *testing.T) (*Service, *MockUsers, *MockPayments) {
	t.Helper()
	users := &MockUsers{}
	members := []user.User{
		{ID: "m1", Role: user.RoleMember, IsActive: true, CreatedAt: testNow.AddDate(0, 0, -3)},
		{ID: "m2", Role: user.RoleMember, IsActive: true, CreatedAt: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "m3", Role: user.RoleMember, IsActive: false, CreatedAt: time.Date(2026, time.September, 30, 23, 0, 0, 0, time.UTC)},
	}
	users.On("Members").Return(members)
	users.On("ActiveMembers").Return(members[:2])
	users.On("Staff").Return([]user.User{{ID: "s1"}, {ID: "s2"}})
	users.On("Trainers").Return([]user.User{{ID: "t1"}})

	payments := &MockPayments{}
	payments.On("MonthlyRevenue").Return(int64(1250000))
	payments.On("Pending").Return([]payment.Payment{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}})
	payments.On("RevenueByMonth").Return(payment.ChartData{Labels: []string{"Okt 26"}, Values: []int64{1250000}})

	logs := make(stubLogs, 0, 8)
	for i := 0; i < 8; i++ {
		logs = append(logs, activity.Entry{ID: fmt.Sprintf("log-%d", i)})
	}

	s := NewService(
		users,
		payments,
		stubMemberships{{ID: "ms-1"}},
		stubCheckIns{today: []checkin.CheckIn{{ID: "c1"}, {ID: "c2"}}, active: []checkin.CheckIn{{ID: "c2"}}},
		logs,
	)
	s.now = func() time.Time { return testNow }
	return s, users, payments
}

func TestStats(t *testing.T) {
	s, users, payments := newService(t)

	assert.Equal(t, Stats{
		TotalMembers:        3,
		ActiveMembers:       2,
		TotalStaff:          2,
		TotalTrainers:       1,
		MonthlyRevenue:      1250000,
		PendingPayments:     3,
		ExpiringMemberships: 1,
		NewMembersThisMonth: 2,
	}, s.Stats())

	users.AssertExpectations(t)
	payments.AssertNotCalled(t, "RevenueByMonth")
}

func TestOverview(t *testing.T) {
	s, _, payments := newService(t)

	o := s.Overview()
	assert.Equal(t, 2, o.TodayCheckIns)
	assert.Equal(t, 1, o.ActiveCheckIns)
	assert.Len(t, o.Expiring, 1)
	require.Len(t, o.RecentActivity, RecentActivityLimit)
	assert.Equal(t, "log-0", o.RecentActivity[0].ID)
	assert.Equal(t, []string{"Okt 26"}, o.RevenueChart.Labels)
	payments.AssertExpectations(t)
}

func TestGetOverviewHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, _, _ := newService(t)
	h := NewHandler(s)

	r := gin.New()
	r.GET("/dashboard", h.GetOverview)
	r.GET("/dashboard/stats", h.GetStats)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var o Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &o))
	assert.Equal(t, 3, o.Stats.TotalMembers)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/dashboard/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"new_members_this_month":2`)
}
