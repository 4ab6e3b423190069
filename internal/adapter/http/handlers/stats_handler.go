package handlers

import (
	"mixto_gestao/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	usecase usecase.IStatsUseCase
}

func NewStatsHandler(uc usecase.IStatsUseCase) *StatsHandler {
	return &StatsHandler{usecase: uc}
}

// Dashboard godoc
// @Summary Dashboard totals and revenue by calendar month
// @Tags stats
// @Produce json
// @Success 200 {object} entities.DashboardStats
// @Router /stats [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Dashboard(c.Request.Context()))
}
