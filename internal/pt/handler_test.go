package pt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gymdash/internal/activity"
	"gymdash/internal/api"
	"gymdash/internal/storage"
	"gymdash/internal/user"
)

type MockMemberFinder struct {
	mock.Mock
}

func (m *MockMemberFinder) GetByID(id string) (user.User, bool) {
	args := m.Called(id)
	return args.Get(0).(user.User), args.Bool(1)
}

func setupRouter(t *testing.T) (*gin.Engine, *Store, *activity.Store) {
	gin.SetMode(gin.TestMode)
	store, _ := newLoadedStore(t)
	members := new(MockMemberFinder)
	members.On("GetByID", mock.Anything).Return(user.User{Name: "Member"}, true)
	logs := activity.NewStore(storage.NewMemoryStore(), nil)
	require.NoError(t, logs.Load(context.Background()))
	h := NewHandler(store, members, logs)

	r := gin.New()
	r.GET("/pt/packages", h.ListPackages)
	r.POST("/pt/packages", h.CreatePackage)
	r.GET("/pt/subscriptions", h.ListSubscriptions)
	r.POST("/pt/subscriptions", h.CreateSubscription)
	r.POST("/pt/subscriptions/:id/sessions", h.AddSession)
	r.PATCH("/pt/subscriptions/:id/status", h.UpdateStatus)
	r.GET("/users/:id/pt-subscription", h.GetActiveByMember)
	return r, store, logs
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddSession_Handler(t *testing.T) {
	r, _, logs := setupRouter(t)

	// pt-sub-003 has 8 of 12 sessions used
	for i := 0; i < 4; i++ {
		w := serve(r, "POST", "/pt/subscriptions/pt-sub-003/sessions", "")
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := serve(r, "POST", "/pt/subscriptions/pt-sub-003/sessions", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	var result api.ResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, ErrNoSessionsLeft.Error(), result.Message)

	assert.Len(t, logs.All(), 4)
	assert.Equal(t, http.StatusNotFound, serve(r, "POST", "/pt/subscriptions/nope/sessions", "").Code)
}

func TestCreateSubscription_Handler(t *testing.T) {
	r, store, _ := setupRouter(t)

	w := serve(r, "POST", "/pt/subscriptions", `{"member_id":"u-member-001","trainer_id":"u-trainer-001","pt_package_id":"pt-pkg-002","start_date":"2026-10-16"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, store.Subscriptions(), 5)

	w = serve(r, "POST", "/pt/subscriptions", `{"member_id":"u-member-001","trainer_id":"u-trainer-001","pt_package_id":"nope","start_date":"2026-10-16"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateStatus_Handler(t *testing.T) {
	r, _, _ := setupRouter(t)

	assert.Equal(t, http.StatusOK, serve(r, "PATCH", "/pt/subscriptions/pt-sub-001/status", `{"status":"expired"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, "PATCH", "/pt/subscriptions/pt-sub-001/status", `{"status":"paused"}`).Code)
	assert.Equal(t, http.StatusNotFound, serve(r, "GET", "/users/u-member-002/pt-subscription", "").Code)
}

func TestListPackages_Active(t *testing.T) {
	r, store, _ := setupRouter(t)
	inactive := false
	store.UpdatePackage(context.Background(), "pt-pkg-001", UpdatePackageRequest{IsActive: &inactive})

	w := serve(r, "GET", "/pt/packages?active=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	var pkgs []Package
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pkgs))
	assert.Len(t, pkgs, 4)
}
