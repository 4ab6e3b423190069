package handlers

import (
	request "mixto_gestao/internal/adapter/http/dto/request"
	"mixto_gestao/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the service and material catalogs.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListServices godoc
// @Summary List catalog services
// @Tags catalog
// @Produce json
// @Success 200 {array} entities.Service
// @Router /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListServices(c.Request.Context()))
}

// GetService godoc
// @Summary Get a catalog service
// @Tags catalog
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} entities.Service
// @Failure 404 {object} pkg.HTTPError
// @Router /catalog/services/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	s, err := h.usecase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// CreateService godoc
// @Summary Create a catalog service
// @Tags catalog
// @Accept json
// @Produce json
// @Param service body request.ServiceRequest true "Service"
// @Success 201 {object} entities.Service
// @Failure 400 {object} pkg.HTTPError
// @Router /catalog/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	s, err := h.usecase.CreateService(c.Request.Context(), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// UpdateService godoc
// @Summary Update a catalog service
// @Description Saved budgets keep the price captured when the item was selected.
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body request.ServiceRequest true "Service"
// @Success 200 {object} entities.Service
// @Router /catalog/services/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	s, err := h.usecase.UpdateService(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// DeleteService godoc
// @Summary Delete a catalog service
// @Tags catalog
// @Param id path string true "Service ID"
// @Success 204
// @Router /catalog/services/{id} [delete]
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMaterials godoc
// @Summary List catalog materials
// @Tags catalog
// @Produce json
// @Success 200 {array} entities.Material
// @Router /catalog/materials [get]
func (h *CatalogHandler) ListMaterials(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListMaterials(c.Request.Context()))
}

// GetMaterial godoc
// @Summary Get a catalog material
// @Tags catalog
// @Produce json
// @Param id path string true "Material ID"
// @Success 200 {object} entities.Material
// @Router /catalog/materials/{id} [get]
func (h *CatalogHandler) GetMaterial(c *gin.Context) {
	m, err := h.usecase.GetMaterial(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// CreateMaterial godoc
// @Summary Create a catalog material
// @Tags catalog
// @Accept json
// @Produce json
// @Param material body request.MaterialRequest true "Material"
// @Success 201 {object} entities.Material
// @Router /catalog/materials [post]
func (h *CatalogHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	m, err := h.usecase.CreateMaterial(c.Request.Context(), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// UpdateMaterial godoc
// @Summary Update a catalog material
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Param material body request.MaterialRequest true "Material"
// @Success 200 {object} entities.Material
// @Router /catalog/materials/{id} [put]
func (h *CatalogHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}
	m, err := h.usecase.UpdateMaterial(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DeleteMaterial godoc
// @Summary Delete a catalog material
// @Tags catalog
// @Param id path string true "Material ID"
// @Success 204
// @Router /catalog/materials/{id} [delete]
func (h *CatalogHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.DeleteMaterial(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
