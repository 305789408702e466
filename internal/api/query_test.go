package api

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestPageQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
	}{
		{"defaults", "", 1, DefaultPerPage},
		{"explicit", "?page=3&per_page=10", 3, 10},
		{"malformed", "?page=abc&per_page=-2", 1, DefaultPerPage},
		{"zero page", "?page=0", 1, DefaultPerPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/items"+tt.query, nil)

			page, perPage := PageQuery(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
		})
	}
}

func TestResult(t *testing.T) {
	assert.Equal(t, ResultResponse{Success: true, Message: "ok"}, Result(nil))
	assert.Equal(t, ResultResponse{Success: false, Message: "boom"}, Result(errors.New("boom")))
}
