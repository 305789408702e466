package activity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gymdash/internal/pagination"
)

func setupRouter(t *testing.T) (*gin.Engine, *Store) {
	gin.SetMode(gin.TestMode)
	store, _ := newTestStore(t, nil)
	h := NewHandler(store)

	r := gin.New()
	r.GET("/admin/activity", h.ListLogs)
	r.DELETE("/admin/activity", h.ClearLogs)
	r.GET("/activity/recent", h.RecentLogs)
	return r, store
}

func TestListLogs_FilterByAction(t *testing.T) {
	r, store := setupRouter(t)
	ctx := context.Background()
	store.Add(ctx, Record{Action: ActionCreate})
	store.Add(ctx, Record{Action: ActionDelete})
	store.Add(ctx, Record{Action: ActionCreate})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/admin/activity?action=create&per_page=1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var page pagination.Page[Entry]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestClearLogs(t *testing.T) {
	r, store := setupRouter(t)
	store.Add(context.Background(), Record{Action: ActionCreate})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/admin/activity", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.All())
}
