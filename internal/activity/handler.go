package activity

import (
	"net/http"

	"gymdash/internal/api"
	"gymdash/internal/pagination"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// @Summary      List activity log entries
// @Description  Admin-only: newest first, optionally filtered by user, action or date
// @Tags         admin,activity
// @Produce      json
// @Security     BearerAuth
// @Param        user_id query string false "Actor id"
// @Param        action query string false "Action kind"
// @Param        date query string false "Date (YYYY-MM-DD)"
// @Param        page query int false "Page"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} pagination.Page[activity.Entry]
// @Failure      401 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /admin/activity [get]
func (h *Handler) ListLogs(c *gin.Context) {
	var logs []Entry
	switch {
	case c.Query("user_id") != "":
		logs = h.store.ByUser(c.Query("user_id"))
	case c.Query("action") != "":
		logs = h.store.ByAction(Action(c.Query("action")))
	case c.Query("date") != "":
		logs = h.store.ByDate(c.Query("date"))
	default:
		logs = h.store.All()
	}

	page, perPage := api.PageQuery(c)
	c.JSON(http.StatusOK, pagination.Paginate(logs, page, perPage))
}

// @Summary      Recent activity
// @Description  The latest 50 entries
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} activity.Entry
// @Router       /activity/recent [get]
func (h *Handler) RecentLogs(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Recent())
}

// @Summary      Today's activity
// @Tags         activity
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} activity.Entry
// @Router       /activity/today [get]
func (h *Handler) TodayLogs(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Today())
}

// @Summary      Clear the activity log
// @Tags         admin,activity
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} api.MessageResponse
// @Router       /admin/activity [delete]
func (h *Handler) ClearLogs(c *gin.Context) {
	h.store.Clear(c.Request.Context())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Activity log cleared"})
}
