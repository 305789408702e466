package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Day   string `json:"day" binding:"omitempty,oneof=monday tuesday"`
}

func bind(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var dst bindTarget
	return w, BindJSON(c, &dst)
}

func TestBindJSON_OK(t *testing.T) {
	w, ok := bind(t, `{"name":"Yoga","day":"monday"}`)
	assert.True(t, ok)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBindJSON_FieldErrors(t *testing.T) {
	w, ok := bind(t, `{"email":"nope","day":"sunday"}`)
	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation failed", resp.Error)
	assert.Equal(t, []FieldError{
		{Field: "Name", Tag: "required", Message: "Name is required"},
		{Field: "Email", Tag: "email", Message: "Email must be a valid email address"},
		{Field: "Day", Tag: "oneof", Message: "Day must be one of: monday tuesday"},
	}, resp.Details)
}

func TestBindJSON_MalformedBody(t *testing.T) {
	w, ok := bind(t, `{"name":`)
	require.False(t, ok)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}
