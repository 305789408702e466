package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Dashboard overview
// @Description  Headline stats, six-month revenue chart, check-in counts and recent activity
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboard.Overview
// @Failure      401 {object} api.ErrorResponse
// @Router       /dashboard [get]
func (h *Handler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Overview())
}

// @Summary      Dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboard.Stats
// @Router       /dashboard/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats())
}
