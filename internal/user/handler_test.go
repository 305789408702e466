package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdash/internal/activity"
	"gymdash/internal/storage"
)

func setupRouter(t *testing.T) (*gin.Engine, *Store, *activity.Store) {
	gin.SetMode(gin.TestMode)
	store, _ := newLoadedStore(t)
	logs := activity.NewStore(storage.NewMemoryStore(), nil)
	require.NoError(t, logs.Load(context.Background()))
	h := NewHandler(store, logs)

	r := gin.New()
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.POST("/users", h.CreateUser)
	r.PATCH("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)
	r.POST("/admin/users", h.CreateAnyUser)
	r.DELETE("/admin/users/:id", h.DeleteAnyUser)
	r.POST("/admin/users/:id/reset-password", h.ResetPassword)
	r.POST("/admin/users/:id/toggle-active", h.ToggleActive)
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

func TestCreateUser(t *testing.T) {
	r, store, logs := setupRouter(t)

	w := doJSON(r, "POST", "/users", map[string]any{
		"name":   "Siti",
		"email":  "siti@example.com",
		"phone":  "0812345",
		"role":   "member",
		"gender": "female",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp CreateUserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Siti", resp.User.Name)
	assert.NotEmpty(t, resp.Password)
	assert.NotContains(t, w.Body.String(), "password_hash")
	assert.True(t, store.CheckPassword(resp.User.ID, resp.Password))

	entries := logs.ByAction(activity.ActionCreate)
	require.Len(t, entries, 1)
	assert.Equal(t, activity.TargetMember, entries[0].TargetType)
}

func TestCreateUser_Validation(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, "POST", "/users", map[string]any{"name": "No Email", "role": "member"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser_StaffNeedsAdminRoute(t *testing.T) {
	r, store, _ := setupRouter(t)
	body := map[string]any{
		"name":   "New Staff",
		"email":  "newstaff@example.com",
		"phone":  "0812",
		"role":   "staff",
		"gender": "male",
	}

	w := doJSON(r, "POST", "/users", body)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, store.Staff(), 1)

	w = doJSON(r, "POST", "/admin/users", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, store.Staff(), 2)
}

func TestUpdateUser(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, "PATCH", "/users/u-member-001", map[string]any{"address": "Jl. Merdeka 1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Jl. Merdeka 1")

	w = doJSON(r, "PATCH", "/users/u-staff-001", map[string]any{"address": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, "PATCH", "/users/u-member-001", map[string]any{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, "PATCH", "/users/missing", map[string]any{"address": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteUser(t *testing.T) {
	r, store, logs := setupRouter(t)

	w := doJSON(r, "DELETE", "/users/u-staff-001", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, "DELETE", "/users/u-member-002", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.Members(), 1)
	assert.Len(t, logs.ByAction(activity.ActionDelete), 1)

	w = doJSON(r, "DELETE", "/admin/users/u-staff-001", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "DELETE", "/admin/users/u-staff-001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListUsers(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := doJSON(r, "GET", "/users?role=member", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Items      []User `json:"items"`
		TotalItems int    `json:"total_items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.TotalItems)

	w = doJSON(r, "GET", "/users?active=true", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 1, page.TotalItems)
}

func TestGetUser(t *testing.T) {
	r, _, _ := setupRouter(t)

	assert.Equal(t, http.StatusOK, doJSON(r, "GET", "/users/u-admin-001", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, "GET", "/users/nope", nil).Code)
}

func TestResetPassword_Handler(t *testing.T) {
	r, store, logs := setupRouter(t)

	w := doJSON(r, "POST", "/admin/users/u-member-001/reset-password", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp ResetPasswordResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, store.CheckPassword("u-member-001", resp.Password))
	assert.Len(t, logs.ByAction(activity.ActionResetPassword), 1)

	w = doJSON(r, "POST", "/admin/users/missing/reset-password", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleActive_Handler(t *testing.T) {
	r, _, logs := setupRouter(t)

	w := doJSON(r, "POST", "/admin/users/u-member-002/toggle-active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_active":true`)

	entries := logs.ByAction(activity.ActionToggleActive)
	require.Len(t, entries, 1)
	assert.Equal(t, "Activated Member Two", entries[0].Details)
}
