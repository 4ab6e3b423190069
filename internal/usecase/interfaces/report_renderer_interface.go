package interfaces

import "mixto_gestao/internal/domain/entities"

// BudgetRow is one line of the budgets spreadsheet.
type BudgetRow struct {
	Budget     entities.Budget
	ClientName string
}

// IReportRenderer turns resolved budgets into shareable documents.
type IReportRenderer interface {
	SummaryText(rb entities.ResolvedBudget) string
	ShareLink(phone, summary string) string
	BudgetPDF(rb entities.ResolvedBudget) ([]byte, error)
	BudgetsSpreadsheet(rows []BudgetRow) ([]byte, error)
}
