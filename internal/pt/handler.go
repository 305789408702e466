package pt

import (
	"errors"
	"fmt"
	"net/http"

	"gymdash/internal/activity"
	"gymdash/internal/api"
	"gymdash/internal/pagination"
	"gymdash/internal/user"

	"github.com/gin-gonic/gin"
)

type MemberFinder interface {
	GetByID(id string) (user.User, bool)
}

type Handler struct {
	store   *Store
	members MemberFinder
	log     activity.Recorder
}

func NewHandler(store *Store, members MemberFinder, log activity.Recorder) *Handler {
	return &Handler{
		store:   store,
		members: members,
		log:     log,
	}
}

func (h *Handler) memberName(id string) string {
	if u, ok := h.members.GetByID(id); ok {
		return u.Name
	}
	return id
}

// @Summary      List PT packages
// @Tags         pt
// @Produce      json
// @Security     BearerAuth
// @Param        active query bool false "Only active packages"
// @Success      200 {array} pt.Package
// @Router       /pt/packages [get]
func (h *Handler) ListPackages(c *gin.Context) {
	if c.Query("active") == "true" {
		c.JSON(http.StatusOK, h.store.ActivePackages())
		return
	}
	c.JSON(http.StatusOK, h.store.Packages())
}

// @Summary      Get a PT package
// @Tags         pt
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "PT package ID"
// @Success      200 {object} pt.Package
// @Failure      404 {object} api.ErrorResponse
// @Router       /pt/packages/{id} [get]
func (h *Handler) GetPackage(c *gin.Context) {
	p, ok := h.store.GetPackageByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "PT package not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Create a PT package
// @Tags         pt
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body pt.CreatePackageRequest true "PT package payload"
// @Success      201 {object} pt.Package
// @Failure      400 {object} api.ErrorResponse
// @Router       /pt/packages [post]
func (h *Handler) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	p := h.store.AddPackage(ctx, req)
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionCreate,
		TargetType: activity.TargetPTPackage,
		TargetID:   p.ID,
		TargetName: p.Name,
		Details:    "Created PT package " + p.Name,
	})

	c.JSON(http.StatusCreated, p)
}

// @Summary      Update a PT package
// @Tags         pt
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "PT package ID"
// @Param        request body pt.UpdatePackageRequest true "Fields to change"
// @Success      200 {object} pt.Package
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /pt/packages/{id} [patch]
func (h *Handler) UpdatePackage(c *gin.Context) {
	var req UpdatePackageRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	p, ok := h.store.UpdatePackage(ctx, c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "PT package not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetPTPackage,
		TargetID:   p.ID,
		TargetName: p.Name,
		Details:    "Updated PT package " + p.Name,
	})

	c.JSON(http.StatusOK, p)
}

// @Summary      Delete a PT package
// @Tags         pt
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "PT package ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /pt/packages/{id} [delete]
func (h *Handler) DeletePackage(c *gin.Context) {
	id := c.Param("id")
	p, _ := h.store.GetPackageByID(id)

	ctx := c.Request.Context()
	if !h.store.DeletePackage(ctx, id) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "PT package not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionDelete,
		TargetType: activity.TargetPTPackage,
		TargetID:   p.ID,
		TargetName: p.Name,
		Details:    "Deleted PT package " + p.Name,
	})

	c.JSON(http.StatusOK, api.MessageResponse{Message: "PT package deleted"})
}

// @Summary      List PT subscriptions
// @Tags         pt
// @Produce      json
// @Security     BearerAuth
// @Param        member_id query string false "Member ID"
// @Param        trainer_id query string false "Trainer ID"
// @Param        status query string false "active"
// @Param        page query int false "Page"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} pagination.Page[pt.Subscription]
// @Router       /pt/subscriptions [get]
func (h *Handler) ListSubscriptions(c *gin.Context) {
	var subs []Subscription
	switch {
	case c.Query("member_id") != "":
		subs = h.store.GetSubscriptionsByMember(c.Query("member_id"))
	case c.Query("trainer_id") != "":
		subs = h.store.GetSubscriptionsByTrainer(c.Query("trainer_id"))
	case c.Query("status") == string(StatusActive):
		subs = h.store.ActiveSubscriptions()
	default:
		subs = h.store.Subscriptions()
	}

	page, perPage := api.PageQuery(c)
	c.JSON(http.StatusOK, pagination.Paginate(subs, page, perPage))
}

// @Summary      Get a PT subscription
// @Tags         pt
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Success      200 {object} pt.Subscription
// @Failure      404 {object} api.ErrorResponse
// @Router       /pt/subscriptions/{id} [get]
func (h *Handler) GetSubscription(c *gin.Context) {
	sub, ok := h.store.GetSubscriptionByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "PT subscription not found"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// @Summary      A member's active PT subscription
// @Tags         pt
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Member ID"
// @Success      200 {object} pt.Subscription
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{id}/pt-subscription [get]
func (h *Handler) GetActiveByMember(c *gin.Context) {
	sub, ok := h.store.GetActiveSubscriptionByMember(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No active PT subscription"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// @Summary      Create a PT subscription
// @Tags         pt
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body pt.CreateSubscriptionRequest true "Subscription payload"
// @Success      201 {object} pt.Subscription
// @Failure      400 {object} api.ErrorResponse
// @Router       /pt/subscriptions [post]
func (h *Handler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	sub, err := h.store.AddSubscription(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrPackageNotFound):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "PT package not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create PT subscription"})
		}
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionCreate,
		TargetType: activity.TargetPTSession,
		TargetID:   sub.ID,
		TargetName: h.memberName(sub.MemberID),
		Details:    fmt.Sprintf("Started PT subscription with %d sessions", sub.TotalSessions),
	})

	c.JSON(http.StatusCreated, sub)
}

// @Summary      Update a PT subscription
// @Tags         pt
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Param        request body pt.UpdateSubscriptionRequest true "Fields to change"
// @Success      200 {object} pt.Subscription
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /pt/subscriptions/{id} [patch]
func (h *Handler) UpdateSubscription(c *gin.Context) {
	var req UpdateSubscriptionRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	sub, ok := h.store.UpdateSubscription(ctx, c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "PT subscription not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetPTSession,
		TargetID:   sub.ID,
		TargetName: h.memberName(sub.MemberID),
		Details:    "Updated PT subscription",
	})

	c.JSON(http.StatusOK, sub)
}

// @Summary      Record a PT session
// @Description  Uses one session; the subscription completes when none remain
// @Tags         pt
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Success      200 {object} pt.Subscription
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ResultResponse
// @Router       /pt/subscriptions/{id}/sessions [post]
func (h *Handler) AddSession(c *gin.Context) {
	ctx := c.Request.Context()
	sub, err := h.store.AddSession(ctx, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "PT subscription not found"})
		case errors.Is(err, ErrNoSessionsLeft):
			c.JSON(http.StatusConflict, api.Result(err))
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to record session"})
		}
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetPTSession,
		TargetID:   sub.ID,
		TargetName: h.memberName(sub.MemberID),
		Details:    fmt.Sprintf("PT session %d/%d", sub.UsedSessions, sub.TotalSessions),
	})

	c.JSON(http.StatusOK, sub)
}

// @Summary      Change a PT subscription's status
// @Tags         pt
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Param        request body pt.UpdateStatusRequest true "New status"
// @Success      200 {object} pt.Subscription
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /pt/subscriptions/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	sub, ok := h.store.UpdateStatus(ctx, c.Param("id"), req.Status)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "PT subscription not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetPTSession,
		TargetID:   sub.ID,
		TargetName: h.memberName(sub.MemberID),
		Details:    "Changed PT subscription status to " + string(sub.Status),
	})

	c.JSON(http.StatusOK, sub)
}

// @Summary      Delete a PT subscription
// @Tags         pt
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subscription ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /pt/subscriptions/{id} [delete]
func (h *Handler) DeleteSubscription(c *gin.Context) {
	id := c.Param("id")
	sub, _ := h.store.GetSubscriptionByID(id)

	ctx := c.Request.Context()
	if !h.store.DeleteSubscription(ctx, id) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "PT subscription not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionDelete,
		TargetType: activity.TargetPTSession,
		TargetID:   sub.ID,
		TargetName: h.memberName(sub.MemberID),
		Details:    "Deleted PT subscription",
	})

	c.JSON(http.StatusOK, api.MessageResponse{Message: "PT subscription deleted"})
}
