package server

import (
	"net/http"

	"gymdash/internal/api"
	"gymdash/internal/jobs"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthResponse{Status: "ok"})
}

type ReminderRunResponse struct {
	Queued int `json:"queued"`
}

// @Summary      Run the expiry reminder sweep now
// @Description  Queues one email per expiring membership, as the daily job does
// @Tags         system
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} server.ReminderRunResponse
// @Failure      503 {object} api.ErrorResponse
// @Router       /admin/reminders/run [post]
func RunReminders(scheduler *jobs.Scheduler) gin.HandlerFunc {
	return func(c *gin.Context) {
		if scheduler == nil {
			c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Error: "mail queue not configured"})
			return
		}
		c.JSON(http.StatusOK, ReminderRunResponse{Queued: scheduler.SweepExpiring(c.Request.Context())})
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
