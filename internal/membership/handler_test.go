package membership

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymdash/internal/activity"
	"gymdash/internal/gympackage"
	"gymdash/internal/storage"
	"gymdash/internal/user"
)

type MockPackageFinder struct {
	mock.Mock
}

func (m *MockPackageFinder) GetByID(id string) (gympackage.GymPackage, bool) {
	args := m.Called(id)
	return args.Get(0).(gympackage.GymPackage), args.Bool(1)
}

type MockMemberFinder struct {
	mock.Mock
}

func (m *MockMemberFinder) GetByID(id string) (user.User, bool) {
	args := m.Called(id)
	return args.Get(0).(user.User), args.Bool(1)
}

func setupRouter(t *testing.T, packages *MockPackageFinder, members *MockMemberFinder) (*gin.Engine, *Store, *activity.Store) {
	gin.SetMode(gin.TestMode)
	store, _ := newTestStore(t, []Membership{{ID: "m-1", MemberID: "u-1", Status: StatusActive, EndDate: "2026-10-20"}})
	logs := activity.NewStore(storage.NewMemoryStore(), nil)
	require.NoError(t, logs.Load(context.Background()))
	h := NewHandler(store, packages, members, logs)

	r := gin.New()
	r.GET("/memberships", h.ListMemberships)
	r.GET("/memberships/expiring", h.ListExpiring)
	r.POST("/memberships", h.CreateMembership)
	r.PATCH("/memberships/:id/status", h.UpdateStatus)
	r.DELETE("/memberships/:id", h.DeleteMembership)
	r.GET("/users/:id/membership", h.GetActiveByMember)
	return r, store, logs
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateMembership_EndDateFromPackage(t *testing.T) {
	packages := new(MockPackageFinder)
	members := new(MockMemberFinder)
	packages.On("GetByID", "pkg-001").Return(gympackage.GymPackage{ID: "pkg-001", DurationDays: 30}, true)
	members.On("GetByID", "u-2").Return(user.User{ID: "u-2", Name: "Budi"}, true)
	r, _, logs := setupRouter(t, packages, members)

	w := doJSON(r, "POST", "/memberships", map[string]any{
		"member_id":  "u-2",
		"package_id": "pkg-001",
		"start_date": "2026-10-01",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var m Membership
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "2026-10-31", m.EndDate)
	assert.Equal(t, StatusActive, m.Status)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Budi", entries[0].TargetName)
	packages.AssertExpectations(t)
}

func TestCreateMembership_UnknownPackageNeedsEndDate(t *testing.T) {
	packages := new(MockPackageFinder)
	packages.On("GetByID", "pkg-x").Return(gympackage.GymPackage{}, false)
	r, _, _ := setupRouter(t, packages, new(MockMemberFinder))

	w := doJSON(r, "POST", "/memberships", map[string]any{
		"member_id":  "u-2",
		"package_id": "pkg-x",
		"start_date": "2026-10-01",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_Handler(t *testing.T) {
	members := new(MockMemberFinder)
	members.On("GetByID", "u-1").Return(user.User{}, false)
	r, store, _ := setupRouter(t, new(MockPackageFinder), members)

	w := doJSON(r, "PATCH", "/memberships/m-1/status", map[string]any{"status": "frozen"})
	require.Equal(t, http.StatusOK, w.Code)
	m, _ := store.GetByID("m-1")
	assert.Equal(t, StatusFrozen, m.Status)

	w = doJSON(r, "PATCH", "/memberships/m-1/status", map[string]any{"status": "unknown"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "PATCH", "/memberships/missing/status", map[string]any{"status": "active"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListExpiring_Handler(t *testing.T) {
	r, _, _ := setupRouter(t, new(MockPackageFinder), new(MockMemberFinder))

	w := doJSON(r, "GET", "/memberships/expiring", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []Membership
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestGetActiveByMember_Handler(t *testing.T) {
	r, _, _ := setupRouter(t, new(MockPackageFinder), new(MockMemberFinder))

	assert.Equal(t, http.StatusOK, doJSON(r, "GET", "/users/u-1/membership", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, "GET", "/users/u-9/membership", nil).Code)
}

func TestDeleteMembership_Handler(t *testing.T) {
	members := new(MockMemberFinder)
	members.On("GetByID", "u-1").Return(user.User{ID: "u-1", Name: "Ani"}, true)
	r, store, _ := setupRouter(t, new(MockPackageFinder), members)

	assert.Equal(t, http.StatusOK, doJSON(r, "DELETE", "/memberships/m-1", nil).Code)
	assert.Empty(t, store.All())
	assert.Equal(t, http.StatusNotFound, doJSON(r, "DELETE", "/memberships/m-1", nil).Code)
}
