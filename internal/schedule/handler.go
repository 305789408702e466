package schedule

import (
	"fmt"
	"net/http"

	"gymdash/internal/activity"
	"gymdash/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *Store
	log   activity.Recorder
}

func NewHandler(store *Store, log activity.Recorder) *Handler {
	return &Handler{
		store: store,
		log:   log,
	}
}

// @Summary      List classes
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        active query bool false "Only active classes"
// @Success      200 {array} schedule.GymClass
// @Router       /classes [get]
func (h *Handler) ListClasses(c *gin.Context) {
	if c.Query("active") == "true" {
		c.JSON(http.StatusOK, h.store.ActiveClasses())
		return
	}
	c.JSON(http.StatusOK, h.store.Classes())
}

// @Summary      Active classes grouped by category
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string][]schedule.GymClass
// @Router       /classes/by-category [get]
func (h *Handler) ClassesByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ClassesByCategory())
}

// @Summary      Get a class
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Class ID"
// @Success      200 {object} schedule.GymClass
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{id} [get]
func (h *Handler) GetClass(c *gin.Context) {
	gc, ok := h.store.GetClassByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		return
	}
	c.JSON(http.StatusOK, gc)
}

// @Summary      Create a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body schedule.CreateClassRequest true "Class payload"
// @Success      201 {object} schedule.GymClass
// @Failure      400 {object} api.ErrorResponse
// @Router       /classes [post]
func (h *Handler) CreateClass(c *gin.Context) {
	var req CreateClassRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	gc := h.store.AddClass(ctx, req)
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionCreate,
		TargetType: activity.TargetClass,
		TargetID:   gc.ID,
		TargetName: gc.Name,
		Details:    "Created class " + gc.Name,
	})

	c.JSON(http.StatusCreated, gc)
}

// @Summary      Update a class
// @Tags         classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Class ID"
// @Param        request body schedule.UpdateClassRequest true "Fields to change"
// @Success      200 {object} schedule.GymClass
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{id} [patch]
func (h *Handler) UpdateClass(c *gin.Context) {
	var req UpdateClassRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	gc, ok := h.store.UpdateClass(ctx, c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetClass,
		TargetID:   gc.ID,
		TargetName: gc.Name,
		Details:    "Updated class " + gc.Name,
	})

	c.JSON(http.StatusOK, gc)
}

// @Summary      Delete a class
// @Description  Also deletes every schedule of the class
// @Tags         classes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Class ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{id} [delete]
func (h *Handler) DeleteClass(c *gin.Context) {
	id := c.Param("id")
	gc, _ := h.store.GetClassByID(id)

	ctx := c.Request.Context()
	removed, ok := h.store.DeleteClass(ctx, id)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionDelete,
		TargetType: activity.TargetClass,
		TargetID:   gc.ID,
		TargetName: gc.Name,
		Details:    fmt.Sprintf("Deleted class %s and %d schedules", gc.Name, removed),
	})

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Class deleted"})
}

// @Summary      List schedules
// @Description  With day, only that day's active schedules sorted by start time
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        day query string false "monday..sunday"
// @Param        class_id query string false "Class ID"
// @Param        active query bool false "Only active schedules"
// @Success      200 {array} schedule.ClassSchedule
// @Router       /schedules [get]
func (h *Handler) ListSchedules(c *gin.Context) {
	switch {
	case c.Query("day") != "":
		c.JSON(http.StatusOK, h.store.GetSchedulesByDay(Day(c.Query("day"))))
	case c.Query("class_id") != "":
		c.JSON(http.StatusOK, h.store.GetSchedulesByClass(c.Query("class_id")))
	case c.Query("active") == "true":
		c.JSON(http.StatusOK, h.store.ActiveSchedules())
	default:
		c.JSON(http.StatusOK, h.store.Schedules())
	}
}

// @Summary      Get a schedule
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Schedule ID"
// @Success      200 {object} schedule.ClassSchedule
// @Failure      404 {object} api.ErrorResponse
// @Router       /schedules/{id} [get]
func (h *Handler) GetSchedule(c *gin.Context) {
	sc, ok := h.store.GetScheduleByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Schedule not found"})
		return
	}
	c.JSON(http.StatusOK, sc)
}

// @Summary      Create a schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body schedule.CreateScheduleRequest true "Schedule payload"
// @Success      201 {object} schedule.ClassSchedule
// @Failure      400 {object} api.ErrorResponse
// @Router       /schedules [post]
func (h *Handler) CreateSchedule(c *gin.Context) {
	var req CreateScheduleRequest
	if !api.BindJSON(c, &req) {
		return
	}
	gc, ok := h.store.GetClassByID(req.ClassID)
	if !ok {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Class not found"})
		return
	}
	if req.EndTime <= req.StartTime {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "end_time must be after start_time"})
		return
	}

	ctx := c.Request.Context()
	sc := h.store.AddSchedule(ctx, req)
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionCreate,
		TargetType: activity.TargetSchedule,
		TargetID:   sc.ID,
		TargetName: gc.Name,
		Details:    fmt.Sprintf("%s %s %s-%s", gc.Name, sc.Day, sc.StartTime, sc.EndTime),
	})

	c.JSON(http.StatusCreated, sc)
}

// @Summary      Update a schedule
// @Tags         schedules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Schedule ID"
// @Param        request body schedule.UpdateScheduleRequest true "Fields to change"
// @Success      200 {object} schedule.ClassSchedule
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /schedules/{id} [patch]
func (h *Handler) UpdateSchedule(c *gin.Context) {
	var req UpdateScheduleRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	sc, ok := h.store.UpdateSchedule(ctx, c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Schedule not found"})
		return
	}
	gc, _ := h.store.GetClassByID(sc.ClassID)
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetSchedule,
		TargetID:   sc.ID,
		TargetName: gc.Name,
		Details:    fmt.Sprintf("%s %s %s-%s", gc.Name, sc.Day, sc.StartTime, sc.EndTime),
	})

	c.JSON(http.StatusOK, sc)
}

// @Summary      Delete a schedule
// @Tags         schedules
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Schedule ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /schedules/{id} [delete]
func (h *Handler) DeleteSchedule(c *gin.Context) {
	id := c.Param("id")
	sc, _ := h.store.GetScheduleByID(id)

	ctx := c.Request.Context()
	if !h.store.DeleteSchedule(ctx, id) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Schedule not found"})
		return
	}
	gc, _ := h.store.GetClassByID(sc.ClassID)
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionDelete,
		TargetType: activity.TargetSchedule,
		TargetID:   sc.ID,
		TargetName: gc.Name,
		Details:    fmt.Sprintf("Removed %s on %s", gc.Name, sc.Day),
	})

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Schedule deleted"})
}
