package membership

import (
	"net/http"

	"gymdash/internal/activity"
	"gymdash/internal/api"
	"gymdash/internal/gympackage"
	"gymdash/internal/helpers"
	"gymdash/internal/pagination"
	"gymdash/internal/user"

	"github.com/gin-gonic/gin"
)

type PackageFinder interface {
	GetByID(id string) (gympackage.GymPackage, bool)
}

type MemberFinder interface {
	GetByID(id string) (user.User, bool)
}

type Handler struct {
	store    *Store
	packages PackageFinder
	members  MemberFinder
	log      activity.Recorder
}

func NewHandler(store *Store, packages PackageFinder, members MemberFinder, log activity.Recorder) *Handler {
	return &Handler{
		store:    store,
		packages: packages,
		members:  members,
		log:      log,
	}
}

func (h *Handler) memberName(id string) string {
	if u, ok := h.members.GetByID(id); ok {
		return u.Name
	}
	return id
}

// @Summary      List memberships
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "active or expired"
// @Param        member_id query string false "Member ID"
// @Param        page query int false "Page"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} pagination.Page[membership.Membership]
// @Router       /memberships [get]
func (h *Handler) ListMemberships(c *gin.Context) {
	var memberships []Membership
	switch {
	case c.Query("member_id") != "":
		memberships = h.store.GetByMember(c.Query("member_id"))
	case c.Query("status") == string(StatusActive):
		memberships = h.store.Active()
	case c.Query("status") == string(StatusExpired):
		memberships = h.store.Expired()
	default:
		memberships = h.store.All()
	}

	page, perPage := api.PageQuery(c)
	c.JSON(http.StatusOK, pagination.Paginate(memberships, page, perPage))
}

// @Summary      Memberships expiring within 7 days
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} membership.Membership
// @Router       /memberships/expiring [get]
func (h *Handler) ListExpiring(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Expiring())
}

// @Summary      Get a membership
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Membership ID"
// @Success      200 {object} membership.Membership
// @Failure      404 {object} api.ErrorResponse
// @Router       /memberships/{id} [get]
func (h *Handler) GetMembership(c *gin.Context) {
	m, ok := h.store.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      A member's active membership
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Member ID"
// @Success      200 {object} membership.Membership
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{id}/membership [get]
func (h *Handler) GetActiveByMember(c *gin.Context) {
	m, ok := h.store.GetActiveByMember(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "No active membership"})
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Create a membership
// @Description  end_date defaults to start_date plus the package duration
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body membership.CreateMembershipRequest true "Membership payload"
// @Success      201 {object} membership.Membership
// @Failure      400 {object} api.ErrorResponse
// @Router       /memberships [post]
func (h *Handler) CreateMembership(c *gin.Context) {
	var req CreateMembershipRequest
	if !api.BindJSON(c, &req) {
		return
	}

	if req.EndDate == "" {
		pkg, ok := h.packages.GetByID(req.PackageID)
		if !ok {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "end_date is required for unknown packages"})
			return
		}
		end, err := helpers.AddDays(req.StartDate, pkg.DurationDays)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		req.EndDate = end
	}

	ctx := c.Request.Context()
	m := h.store.Add(ctx, req)
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionCreate,
		TargetType: activity.TargetMembership,
		TargetID:   m.ID,
		TargetName: h.memberName(m.MemberID),
		Details:    "Created membership until " + m.EndDate,
	})

	c.JSON(http.StatusCreated, m)
}

// @Summary      Update a membership
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Membership ID"
// @Param        request body membership.UpdateMembershipRequest true "Fields to change"
// @Success      200 {object} membership.Membership
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /memberships/{id} [patch]
func (h *Handler) UpdateMembership(c *gin.Context) {
	var req UpdateMembershipRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	m, ok := h.store.Update(ctx, c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetMembership,
		TargetID:   m.ID,
		TargetName: h.memberName(m.MemberID),
		Details:    "Updated membership",
	})

	c.JSON(http.StatusOK, m)
}

// @Summary      Change a membership's status
// @Tags         memberships
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Membership ID"
// @Param        request body membership.UpdateStatusRequest true "New status"
// @Success      200 {object} membership.Membership
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /memberships/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	m, ok := h.store.UpdateStatus(ctx, c.Param("id"), req.Status)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetMembership,
		TargetID:   m.ID,
		TargetName: h.memberName(m.MemberID),
		Details:    "Changed membership status to " + string(m.Status),
	})

	c.JSON(http.StatusOK, m)
}

// @Summary      Delete a membership
// @Tags         memberships
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Membership ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /memberships/{id} [delete]
func (h *Handler) DeleteMembership(c *gin.Context) {
	id := c.Param("id")
	m, _ := h.store.GetByID(id)

	ctx := c.Request.Context()
	if !h.store.Delete(ctx, id) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Membership not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionDelete,
		TargetType: activity.TargetMembership,
		TargetID:   m.ID,
		TargetName: h.memberName(m.MemberID),
		Details:    "Deleted membership",
	})

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Membership deleted"})
}
