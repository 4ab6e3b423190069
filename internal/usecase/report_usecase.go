package usecase

import (
	"context"
	"errors"
	"fmt"
	"mixto_gestao/internal/domain/entities"
	"mixto_gestao/internal/metrics"
	"mixto_gestao/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrReportFailed = errors.New("could not generate the report, check the budget data and try again")

// ShareLink is a chat deep link carrying the budget summary.
type ShareLink struct {
	BudgetID string `json:"budget_id"`
	Phone    string `json:"phone"`
	Text     string `json:"text"`
	URL      string `json:"url"`
}

type IReportUseCase interface {
	Summary(ctx context.Context, budgetID string) (string, error)
	ShareLink(ctx context.Context, budgetID string) (ShareLink, error)
	BudgetPDF(ctx context.Context, budgetID string) ([]byte, error)
	BudgetsSpreadsheet(ctx context.Context) ([]byte, error)
}

type ReportUseCase struct {
	budgets  IBudgetUseCase
	ws       *Workspace
	renderer interfaces.IReportRenderer
	log      *zap.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(ws *Workspace, budgets IBudgetUseCase, renderer interfaces.IReportRenderer, log *zap.Logger) *ReportUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportUseCase{budgets: budgets, ws: ws, renderer: renderer, log: log.Named("report.usecase")}
}

func (u *ReportUseCase) Summary(ctx context.Context, budgetID string) (string, error) {
	rb, err := u.budgets.Resolve(ctx, budgetID)
	if err != nil {
		return "", err
	}
	metrics.IncrementReport("summary", "success")
	return u.renderer.SummaryText(rb), nil
}

// ShareLink addresses the budget's client. A client without a phone yields
// a link with no recipient.
func (u *ReportUseCase) ShareLink(ctx context.Context, budgetID string) (ShareLink, error) {
	rb, err := u.budgets.Resolve(ctx, budgetID)
	if err != nil {
		return ShareLink{}, err
	}
	text := u.renderer.SummaryText(rb)
	metrics.IncrementReport("share_link", "success")
	return ShareLink{
		BudgetID: rb.Budget.ID,
		Phone:    rb.Client.Phone,
		Text:     text,
		URL:      u.renderer.ShareLink(rb.Client.Phone, text),
	}, nil
}

func (u *ReportUseCase) BudgetPDF(ctx context.Context, budgetID string) ([]byte, error) {
	rb, err := u.budgets.Resolve(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	out, err := u.renderer.BudgetPDF(rb)
	if err != nil {
		metrics.IncrementReport("pdf", "error")
		u.log.Error("pdf generation failed", zap.String("budget_id", rb.Budget.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrReportFailed, err)
	}
	metrics.IncrementReport("pdf", "success")
	return out, nil
}

func (u *ReportUseCase) BudgetsSpreadsheet(_ context.Context) ([]byte, error) {
	d := u.ws.Snapshot()
	rows := make([]interfaces.BudgetRow, 0, len(d.Budgets))
	for _, b := range d.Budgets {
		name := entities.UnknownClientName
		if c, ok := d.FindClient(b.ClientID); ok {
			name = c.Name
		}
		rows = append(rows, interfaces.BudgetRow{Budget: b, ClientName: name})
	}

	out, err := u.renderer.BudgetsSpreadsheet(rows)
	if err != nil {
		metrics.IncrementReport("xlsx", "error")
		u.log.Error("spreadsheet generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrReportFailed, err)
	}
	metrics.IncrementReport("xlsx", "success")
	return out, nil
}
