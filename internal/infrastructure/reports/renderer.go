// Package reports renders budgets as chat text, share links, PDF documents
// and spreadsheets.
package reports

import (
	"mixto_gestao/internal/config"
	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/usecase/interfaces"
)

type Renderer struct {
	company config.CompanyConfig
}

var _ interfaces.IReportRenderer = (*Renderer)(nil)

func NewRenderer(company config.CompanyConfig) *Renderer {
	return &Renderer{company: company}
}

func (r *Renderer) SummaryText(rb entities.ResolvedBudget) string {
	return SummaryText(rb, r.company.Name)
}

func (r *Renderer) ShareLink(phone, summary string) string {
	return ShareLink(phone, summary)
}

func (r *Renderer) BudgetPDF(rb entities.ResolvedBudget) ([]byte, error) {
	return BudgetPDF(rb, r.company)
}

func (r *Renderer) BudgetsSpreadsheet(rows []interfaces.BudgetRow) ([]byte, error) {
	return BudgetsSpreadsheet(rows, r.company.Name)
}
