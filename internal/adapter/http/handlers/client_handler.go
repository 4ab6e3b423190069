package handlers

import (
	request "mixto_gestao/internal/adapter/http/dto/request"
	"mixto_gestao/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// ListClients godoc
// @Summary List clients
// @Tags clients
// @Produce json
// @Success 200 {array} entities.Client
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.List(c.Request.Context()))
}

// GetClient godoc
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} entities.Client
// @Failure 404 {object} pkg.HTTPError
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// CreateClient godoc
// @Summary Create a client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body request.ClientRequest true "Client"
// @Success 201 {object} entities.Client
// @Failure 400 {object} pkg.HTTPError
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	client, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// UpdateClient godoc
// @Summary Replace a client's data
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body request.ClientRequest true "Client"
// @Success 200 {object} entities.Client
// @Failure 404 {object} pkg.HTTPError
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	client, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient godoc
// @Summary Delete a client
// @Description Budgets that reference the client keep the id and show a placeholder name.
// @Tags clients
// @Param id path string true "Client ID"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
