package routes

import (
	"mixto_gestao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgets   = "/budgets"
	PathReports   = "/reports"
	PathStats     = "/stats"
	PathAssistant = "/assistant"
)

type budgetHandlers struct {
	budgets  *handlers.BudgetHandler
	tasks    *handlers.TaskHandler
	reports  *handlers.ReportHandler
	payments *handlers.PaymentLinkHandler
}

// Budget ids contain a slash, so a single budget is addressed as
// /budgets/:seq/:year.
func addBudgetRoutes(rg *gin.RouterGroup, h budgetHandlers) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.GET("", h.budgets.ListBudgets)
		budgets.POST("", h.budgets.CreateBudget)
		budgets.GET("/board", h.budgets.Board)
		budgets.POST("/preview", h.budgets.PreviewBudget)
	}

	budget := budgets.Group("/:seq/:year")
	{
		budget.GET("", h.budgets.GetBudget)
		budget.PATCH("", h.budgets.UpdateBudget)
		budget.PATCH("/status", h.budgets.SetBudgetStatus)
		budget.GET("/resolved", h.budgets.GetResolvedBudget)

		budget.POST("/tasks", h.tasks.AddTask)
		budget.PATCH("/tasks/:task_id/status", h.tasks.SetTaskStatus)
		budget.DELETE("/tasks/:task_id", h.tasks.RemoveTask)

		budget.GET("/summary", h.reports.Summary)
		budget.GET("/share-link", h.reports.ShareLink)
		budget.GET("/pdf", h.reports.BudgetPDF)

		budget.POST("/payment-link", h.payments.CreatePaymentLink)
	}
}

func addReportRoutes(rg *gin.RouterGroup, h *handlers.ReportHandler) {
	rg.Group(PathReports).GET("/budgets.xlsx", h.BudgetsSpreadsheet)
}

func addInsightRoutes(rg *gin.RouterGroup, stats *handlers.StatsHandler, assistant *handlers.AssistantHandler) {
	rg.GET(PathStats, stats.Dashboard)
	rg.Group(PathAssistant).POST("/ask", assistant.Ask)
}
