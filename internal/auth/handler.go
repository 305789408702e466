package auth

import (
	"context"
	"errors"
	"net/http"

	"gymdash/internal/api"
	"gymdash/internal/user"

	"github.com/gin-gonic/gin"
)

// ProfileStore persists changes made through the signed-in user's own
// profile endpoints.
type ProfileStore interface {
	Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.User, bool)
	ChangePassword(ctx context.Context, id, oldPassword, newPassword string) error
}

type Handler struct {
	gate     *Gate
	profiles ProfileStore
	secret   string
}

func NewHandler(gate *Gate, profiles ProfileStore, secret string) *Handler {
	return &Handler{
		gate:     gate,
		profiles: profiles,
		secret:   secret,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	User         user.User `json:"user"`
}

// @Summary      Sign in to the dashboard
// @Description  Admin and staff accounts only
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body auth.LoginRequest true "Credentials"
// @Success      200 {object} auth.TokenResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if !api.BindJSON(c, &req) {
		return
	}

	u, err := h.gate.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: err.Error()})
		return
	}

	access, refresh, err := GenerateTokens(u.ID, u.Email, string(u.Role), h.secret, h.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: access, RefreshToken: refresh, User: u})
}

// @Summary      Refresh the access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body auth.RefreshRequest true "Refresh token"
// @Success      200 {object} auth.TokenResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /auth/refresh [post]
func (h *Handler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if !api.BindJSON(c, &req) {
		return
	}

	access, claims, err := RefreshAccessToken(req.RefreshToken, h.secret, h.secret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid refresh token"})
		return
	}
	current, ok := h.gate.CurrentUser()
	if !ok || current.ID != claims.UserID {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Session ended, please sign in again"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AccessToken: access, User: current})
}

// @Summary      Sign out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} api.MessageResponse
// @Router       /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	h.gate.Logout(c.Request.Context())
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Signed out"})
}

// @Summary      Resolve a dashboard navigation
// @Tags         auth
// @Produce      json
// @Param        route query string true "Route name"
// @Success      200 {object} auth.Decision
// @Router       /auth/guard [get]
func (h *Handler) Navigate(c *gin.Context) {
	c.JSON(http.StatusOK, Guard(c.Query("route"), h.gate))
}

// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} user.User
// @Failure      401 {object} api.ErrorResponse
// @Router       /me [get]
func (h *Handler) Me(c *gin.Context) {
	u, ok := h.gate.CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: ErrNotSignedIn.Error()})
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Update own profile
// @Description  Role and active flag cannot be changed here
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body user.UpdateUserRequest true "Fields to change"
// @Success      200 {object} user.User
// @Failure      400 {object} api.ErrorResponse
// @Failure      401 {object} api.ErrorResponse
// @Router       /me [patch]
func (h *Handler) UpdateMe(c *gin.Context) {
	var req user.UpdateUserRequest
	if !api.BindJSON(c, &req) {
		return
	}
	req.Role = nil
	req.IsActive = nil

	ctx := c.Request.Context()
	current, ok := h.gate.CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: ErrNotSignedIn.Error()})
		return
	}
	// Seed-only sessions have no stored record; the session copy still changes.
	h.profiles.Update(ctx, current.ID, req)

	u, _ := h.gate.UpdateCurrentUser(ctx, req)
	c.JSON(http.StatusOK, u)
}

// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body user.ChangePasswordRequest true "Old and new password"
// @Success      200 {object} api.ResultResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      409 {object} api.ResultResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /me/password [post]
func (h *Handler) ChangePassword(c *gin.Context) {
	var req user.ChangePasswordRequest
	if !api.BindJSON(c, &req) {
		return
	}

	current, ok := h.gate.CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: ErrNotSignedIn.Error()})
		return
	}

	err := h.profiles.ChangePassword(c.Request.Context(), current.ID, req.OldPassword, req.NewPassword)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, api.Result(nil))
	case errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusNotFound, api.Result(err))
	case errors.Is(err, user.ErrWrongPassword), errors.Is(err, user.ErrPasswordTooShort):
		c.JSON(http.StatusConflict, api.Result(err))
	default:
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to change password"})
	}
}
