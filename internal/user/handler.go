package user

import (
	"errors"
	"net/http"

	"gymdash/internal/activity"
	"gymdash/internal/api"
	"gymdash/internal/pagination"

	"github.com/gin-gonic/gin"
)

var ErrPrivilegedRole = errors.New("only admins can manage staff and admin accounts")

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

func privileged(r Role) bool {
	return r == RoleAdmin || r == RoleStaff
}

func targetType(r Role) string {
	switch r {
	case RoleMember:
		return activity.TargetMember
	case RoleTrainer:
		return activity.TargetTrainer
	default:
		return activity.TargetStaff
	}
}

// @Summary      List users
// @Description  Filter by role; active=true restricts members to active ones
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role query string false "admin, staff, trainer or member"
// @Param        active query bool false "Only active members"
// @Param        page query int false "Page"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} pagination.Page[user.User]
// @Failure      401 {object} api.ErrorResponse
// @Router       /users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	var users []User
	switch {
	case c.Query("active") == "true":
		users = h.store.ActiveMembers()
	case c.Query("role") != "":
		users = h.store.GetByRole(Role(c.Query("role")))
	default:
		users = h.store.All()
	}

	page, perPage := api.PageQuery(c)
	c.JSON(http.StatusOK, pagination.Paginate(users, page, perPage))
}

// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} user.User
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	u, ok := h.store.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Create a member or trainer
// @Description  Returns the generated password once
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body user.CreateUserRequest true "User payload"
// @Success      201 {object} user.CreateUserResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Router       /users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	h.create(c, false)
}

// @Summary      Create any user
// @Description  Admin-only: also creates staff and admin accounts
// @Tags         admin,users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body user.CreateUserRequest true "User payload"
// @Success      201 {object} user.CreateUserResponse
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/users [post]
func (h *Handler) CreateAnyUser(c *gin.Context) {
	h.create(c, true)
}

func (h *Handler) create(c *gin.Context, allowPrivileged bool) {
	var req CreateUserRequest
	if !api.BindJSON(c, &req) {
		return
	}
	if !allowPrivileged && privileged(req.Role) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: ErrPrivilegedRole.Error()})
		return
	}

	ctx := c.Request.Context()
	u, plain, err := h.store.Add(ctx, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create user"})
		return
	}

	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionCreate,
		TargetType: targetType(u.Role),
		TargetID:   u.ID,
		TargetName: u.Name,
		Details:    "Created " + string(u.Role) + " " + u.Name,
	})

	c.JSON(http.StatusCreated, CreateUserResponse{User: u, Password: plain})
}

// @Summary      Update a member or trainer
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body user.UpdateUserRequest true "Fields to change"
// @Success      200 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{id} [patch]
func (h *Handler) UpdateUser(c *gin.Context) {
	h.update(c, false)
}

// @Summary      Update any user
// @Tags         admin,users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Param        request body user.UpdateUserRequest true "Fields to change"
// @Success      200 {object} user.User
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/users/{id} [patch]
func (h *Handler) UpdateAnyUser(c *gin.Context) {
	h.update(c, true)
}

func (h *Handler) update(c *gin.Context, allowPrivileged bool) {
	var req UpdateUserRequest
	if !api.BindJSON(c, &req) {
		return
	}

	id := c.Param("id")
	if !allowPrivileged {
		current, ok := h.store.GetByID(id)
		if (ok && privileged(current.Role)) || (req.Role != nil && privileged(*req.Role)) {
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: ErrPrivilegedRole.Error()})
			return
		}
	}

	ctx := c.Request.Context()
	u, ok := h.store.Update(ctx, id, req)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		return
	}

	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: targetType(u.Role),
		TargetID:   u.ID,
		TargetName: u.Name,
		Details:    "Updated " + string(u.Role) + " " + u.Name,
	})

	c.JSON(http.StatusOK, u)
}

// @Summary      Delete a member or trainer
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} api.MessageResponse
// @Failure      403 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	h.delete(c, false)
}

// @Summary      Delete any user
// @Tags         admin,users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/users/{id} [delete]
func (h *Handler) DeleteAnyUser(c *gin.Context) {
	h.delete(c, true)
}

func (h *Handler) delete(c *gin.Context, allowPrivileged bool) {
	id := c.Param("id")
	u, ok := h.store.GetByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		return
	}
	if !allowPrivileged && privileged(u.Role) {
		c.JSON(http.StatusForbidden, api.ErrorResponse{Error: ErrPrivilegedRole.Error()})
		return
	}

	ctx := c.Request.Context()
	if !h.store.Delete(ctx, id) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		return
	}

	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionDelete,
		TargetType: targetType(u.Role),
		TargetID:   u.ID,
		TargetName: u.Name,
		Details:    "Deleted " + string(u.Role) + " " + u.Name,
	})

	c.JSON(http.StatusOK, api.MessageResponse{Message: "User deleted"})
}

// @Summary      Reset a user's password
// @Description  Admin-only: returns the new generated password once
// @Tags         admin,users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} user.ResetPasswordResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/users/{id}/reset-password [post]
func (h *Handler) ResetPassword(c *gin.Context) {
	ctx := c.Request.Context()
	plain, err := h.store.ResetPassword(ctx, c.Param("id"))
	if err != nil {
		switch err {
		case ErrUserNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to reset password"})
		}
		return
	}

	u, _ := h.store.GetByID(c.Param("id"))
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionResetPassword,
		TargetType: targetType(u.Role),
		TargetID:   u.ID,
		TargetName: u.Name,
		Details:    "Reset password for " + u.Name,
	})

	c.JSON(http.StatusOK, ResetPasswordResponse{Password: plain})
}

// @Summary      Toggle a user's active flag
// @Tags         admin,users
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} user.User
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/users/{id}/toggle-active [post]
func (h *Handler) ToggleActive(c *gin.Context) {
	ctx := c.Request.Context()
	u, ok := h.store.ToggleActive(ctx, c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "User not found"})
		return
	}

	state := "Deactivated "
	if u.IsActive {
		state = "Activated "
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionToggleActive,
		TargetType: targetType(u.Role),
		TargetID:   u.ID,
		TargetName: u.Name,
		Details:    state + u.Name,
	})

	c.JSON(http.StatusOK, u)
}
