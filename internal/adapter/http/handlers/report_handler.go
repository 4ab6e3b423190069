package handlers

import (
	"fmt"
	"mixto_gestao/internal/infrastructure/reports"
	"mixto_gestao/internal/usecase"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	spreadsheetName = "orcamentos.xlsx"
)

// ReportHandler serves the text summary, the WhatsApp link and the
// PDF and XLSX exports.
type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

// Summary godoc
// @Summary Plain-text budget summary
// @Description Returns text/plain unless the client accepts only JSON.
// @Tags reports
// @Produce plain
// @Produce json
// @Param seq path string true "Sequence"
// @Param year path string true "Year"
// @Success 200 {string} string
// @Router /budgets/{seq}/{year}/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	text, err := h.usecase.Summary(c.Request.Context(), budgetIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.JSON(http.StatusOK, gin.H{"text": text})
		return
	}
	c.String(http.StatusOK, text)
}

// ShareLink godoc
// @Summary WhatsApp share link for a budget
// @Tags reports
// @Produce json
// @Param seq path string true "Sequence"
// @Param year path string true "Year"
// @Success 200 {object} usecase.ShareLink
// @Router /budgets/{seq}/{year}/share-link [get]
func (h *ReportHandler) ShareLink(c *gin.Context) {
	link, err := h.usecase.ShareLink(c.Request.Context(), budgetIDParam(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// BudgetPDF godoc
// @Summary Budget PDF
// @Tags reports
// @Produce application/pdf
// @Param seq path string true "Sequence"
// @Param year path string true "Year"
// @Success 200 {file} file
// @Router /budgets/{seq}/{year}/pdf [get]
func (h *ReportHandler) BudgetPDF(c *gin.Context) {
	id := budgetIDParam(c)
	doc, err := h.usecase.BudgetPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	attachment(c, reports.PDFFileName(id))
	c.Data(http.StatusOK, contentTypePDF, doc)
}

// BudgetsSpreadsheet godoc
// @Summary Spreadsheet with every budget
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /reports/budgets.xlsx [get]
func (h *ReportHandler) BudgetsSpreadsheet(c *gin.Context) {
	doc, err := h.usecase.BudgetsSpreadsheet(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	attachment(c, spreadsheetName)
	c.Data(http.StatusOK, contentTypeXLSX, doc)
}

func attachment(c *gin.Context, name string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}
