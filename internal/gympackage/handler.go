package gympackage

import (
	"net/http"

	"gymdash/internal/activity"
	"gymdash/internal/api"
	"gymdash/internal/pagination"

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

// @Summary      List membership packages
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        active query bool false "Only active packages"
// @Success      200 {object} pagination.Page[gympackage.GymPackage]
// @Router       /packages [get]
func (h *Handler) ListPackages(c *gin.Context) {
	packages := h.store.All()
	if c.Query("active") == "true" {
		packages = h.store.Active()
	}

	page, perPage := api.PageQuery(c)
	c.JSON(http.StatusOK, pagination.Paginate(packages, page, perPage))
}

// @Summary      Get a package
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Package ID"
// @Success      200 {object} gympackage.GymPackage
// @Failure      404 {object} api.ErrorResponse
// @Router       /packages/{id} [get]
func (h *Handler) GetPackage(c *gin.Context) {
	p, ok := h.store.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Package not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Create a package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gympackage.CreatePackageRequest true "Package payload"
// @Success      201 {object} gympackage.GymPackage
// @Failure      400 {object} api.ErrorResponse
// @Router       /packages [post]
func (h *Handler) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	p := h.store.Add(ctx, req)
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionCreate,
		TargetType: activity.TargetPackage,
		TargetID:   p.ID,
		TargetName: p.Name,
		Details:    "Created package " + p.Name,
	})

	c.JSON(http.StatusCreated, p)
}

// @Summary      Update a package
// @Tags         packages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Package ID"
// @Param        request body gympackage.UpdatePackageRequest true "Fields to change"
// @Success      200 {object} gympackage.GymPackage
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /packages/{id} [patch]
func (h *Handler) UpdatePackage(c *gin.Context) {
	var req UpdatePackageRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	p, ok := h.store.Update(ctx, c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Package not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetPackage,
		TargetID:   p.ID,
		TargetName: p.Name,
		Details:    "Updated package " + p.Name,
	})

	c.JSON(http.StatusOK, p)
}

// @Summary      Delete a package
// @Tags         packages
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Package ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /packages/{id} [delete]
func (h *Handler) DeletePackage(c *gin.Context) {
	id := c.Param("id")
	p, _ := h.store.GetByID(id)

	ctx := c.Request.Context()
	if !h.store.Delete(ctx, id) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Package not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionDelete,
		TargetType: activity.TargetPackage,
		TargetID:   p.ID,
		TargetName: p.Name,
		Details:    "Deleted package " + p.Name,
	})

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Package deleted"})
}
