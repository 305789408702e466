package checkin

import (
	"errors"
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

// @Summary      List check-ins
// @Tags         checkins
// @Produce      json
// @Security     BearerAuth
// @Param        scope query string false "today or active"
// @Param        date query string false "Date (YYYY-MM-DD)"
// @Param        member_id query string false "Member ID"
// @Param        page query int false "Page"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} pagination.Page[checkin.CheckIn]
// @Router       /checkins [get]
func (h *Handler) ListCheckIns(c *gin.Context) {
	var checkins []CheckIn
	switch {
	case c.Query("member_id") != "":
		checkins = h.store.GetByMember(c.Query("member_id"))
	case c.Query("date") != "":
		checkins = h.store.GetByDate(c.Query("date"))
	case c.Query("scope") == "today":
		checkins = h.store.Today()
	case c.Query("scope") == "active":
		checkins = h.store.Active()
	default:
		checkins = h.store.All()
	}

	page, perPage := api.PageQuery(c)
	c.JSON(http.StatusOK, pagination.Paginate(checkins, page, perPage))
}

// @Summary      Check a member in
// @Tags         checkins
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body checkin.CheckInRequest true "Check-in payload"
// @Success      201 {object} checkin.CheckIn
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ResultResponse
// @Router       /checkins [post]
func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if !api.BindJSON(c, &req) {
		return
	}

	member, ok := h.members.GetByID(req.MemberID)
	if !ok || member.Role != user.RoleMember {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		return
	}

	ctx := c.Request.Context()
	ci, err := h.store.CheckIn(ctx, member.ID, member.Name, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyCheckedIn):
			c.JSON(http.StatusConflict, api.Result(err))
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to check in"})
		}
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionCheckIn,
		TargetType: activity.TargetCheckIn,
		TargetID:   ci.ID,
		TargetName: ci.MemberName,
		Details:    ci.MemberName + " checked in",
	})

	c.JSON(http.StatusCreated, ci)
}

// @Summary      Check a member out
// @Tags         checkins
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Check-in ID"
// @Success      200 {object} checkin.CheckIn
// @Failure      404 {object} api.ErrorResponse
// @Router       /checkins/{id}/checkout [post]
func (h *Handler) CheckOut(c *gin.Context) {
	ctx := c.Request.Context()
	ci, ok := h.store.CheckOut(ctx, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Check-in not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetCheckIn,
		TargetID:   ci.ID,
		TargetName: ci.MemberName,
		Details:    ci.MemberName + " checked out",
	})

	c.JSON(http.StatusOK, ci)
}

type statusResponse struct {
	MemberID         string `json:"member_id"`
	IsCheckedInToday bool   `json:"is_checked_in_today"`
}

// @Summary      Whether a member is in the gym today
// @Tags         checkins
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Member ID"
// @Success      200 {object} checkin.statusResponse
// @Router       /users/{id}/checkin-status [get]
func (h *Handler) CheckInStatus(c *gin.Context) {
	id := c.Param("id")
	c.JSON(http.StatusOK, statusResponse{MemberID: id, IsCheckedInToday: h.store.IsCheckedInToday(id)})
}
