package handlers

import (
	request "mixto_gestao/internal/adapter/http/dto/request"
	response "mixto_gestao/internal/adapter/http/dto/response"
	"mixto_gestao/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BudgetHandler handles budget CRUD, the status lifecycle and the board.
type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// ListBudgets godoc
// @Summary List budgets
// @Description Budgets are returned in creation order, optionally filtered by status.
// @Tags budgets
// @Produce json
// @Param status query string false "pendente, aprovado, em_andamento, concluido or cancelado"
// @Success 200 {array} response.BudgetResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

// CreateBudget godoc
// @Summary Create a budget
// @Description Captures the current catalog prices and assigns the next NNN/YYYY id.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body request.CreateBudgetRequest true "Budget"
// @Success 201 {object} response.BudgetResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// GetBudget godoc
// @Summary Get a budget
// @Tags budgets
// @Produce json
// @Param seq path string true "Sequence, e.g. 001"
// @Param year path string true "Year, e.g. 2026"
// @Success 200 {object} response.BudgetResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /budgets/{seq}/{year} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.Get(c.Request.Context(), budgetIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// UpdateBudget godoc
// @Summary Edit a budget
// @Description Items kept at the same position with the same catalog entry keep their captured price.
// @Tags budgets
// @Accept json
// @Produce json
// @Param seq path string true "Sequence"
// @Param year path string true "Year"
// @Param budget body request.UpdateBudgetRequest true "Fields to change"
// @Success 200 {object} response.BudgetResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /budgets/{seq}/{year} [patch]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	var payload request.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	budget, err := h.usecase.Update(c.Request.Context(), budgetIDParam(c), payload.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// SetBudgetStatus godoc
// @Summary Change a budget's status
// @Tags budgets
// @Accept json
// @Produce json
// @Param seq path string true "Sequence"
// @Param year path string true "Year"
// @Param status body request.StatusRequest true "New status"
// @Success 200 {object} response.BudgetResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /budgets/{seq}/{year}/status [patch]
func (h *BudgetHandler) SetBudgetStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	budget, err := h.usecase.SetStatus(c.Request.Context(), budgetIDParam(c), payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// GetResolvedBudget godoc
// @Summary Get a budget with client and item names resolved
// @Tags budgets
// @Produce json
// @Param seq path string true "Sequence"
// @Param year path string true "Year"
// @Success 200 {object} response.ResolvedBudgetResponse
// @Router /budgets/{seq}/{year}/resolved [get]
func (h *BudgetHandler) GetResolvedBudget(c *gin.Context) {
	rb, err := h.usecase.Resolve(c.Request.Context(), budgetIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromResolvedBudget(rb))
}

// PreviewBudget godoc
// @Summary Price an item list without saving it
// @Tags budgets
// @Accept json
// @Produce json
// @Param items body request.PreviewBudgetRequest true "Items"
// @Success 200 {object} usecase.BudgetPreview
// @Router /budgets/preview [post]
func (h *BudgetHandler) PreviewBudget(c *gin.Context) {
	var payload request.PreviewBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	services, materials := payload.Inputs()
	preview, err := h.usecase.Preview(c.Request.Context(), services, materials)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Board godoc
// @Summary Project board grouped by status
// @Tags budgets
// @Produce json
// @Success 200 {array} response.BoardColumnResponse
// @Router /budgets/board [get]
func (h *BudgetHandler) Board(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromBoard(h.usecase.Board(c.Request.Context())))
}
