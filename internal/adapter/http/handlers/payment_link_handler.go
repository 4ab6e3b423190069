package handlers

import (
	"mixto_gestao/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PaymentLinkHandler creates Mercado Pago checkout links for approved budgets.
type PaymentLinkHandler struct {
	usecase usecase.IPaymentLinkUseCase
}

func NewPaymentLinkHandler(uc usecase.IPaymentLinkUseCase) *PaymentLinkHandler {
	return &PaymentLinkHandler{usecase: uc}
}

// CreatePaymentLink godoc
// @Summary Create a payment link
// @Tags payments
// @Produce json
// @Param seq path string true "Sequence"
// @Param year path string true "Year"
// @Success 201 {object} entities.PaymentLink
// @Failure 409 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /budgets/{seq}/{year}/payment-link [post]
func (h *PaymentLinkHandler) CreatePaymentLink(c *gin.Context) {
	link, err := h.usecase.Create(c.Request.Context(), budgetIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}
