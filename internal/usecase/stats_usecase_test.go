package usecase

import (
	"context"
	"testing"
)

func TestStatsUseCase_Dashboard(t *testing.T) {
	ctx := context.Background()
	f := newBudgetFixture(t)

	a, _ := f.budgets.Create(ctx, CreateBudgetCommand{ServiceItems: []LineItemInput{{CatalogID: f.painting.ID, Quantity: ptr(3.0)}}})
	b, _ := f.budgets.Create(ctx, CreateBudgetCommand{MaterialItems: []LineItemInput{{CatalogID: f.cement.ID, Quantity: ptr(2.0)}}})
	_, _ = f.budgets.SetStatus(ctx, a.ID, "aprovado")
	_, _ = f.budgets.SetStatus(ctx, b.ID, "cancelado")

	s := NewStatsUseCase(f.ws).Dashboard(ctx)
	if s.TotalClients != 1 || s.TotalBudgets != 2 {
		t.Fatalf("unexpected counters %+v", s)
	}
	if s.TotalRevenue != 390 {
		t.Fatalf("expected revenue over every status (390), got %v", s.TotalRevenue)
	}
	if s.ActiveServices != 1 {
		t.Fatalf("expected 1 active, got %d", s.ActiveServices)
	}
	if len(s.MonthlyRevenue) != 12 || s.MonthlyRevenue[2].Value != 390 || s.MonthlyRevenue[2].Label != "Mar" {
		t.Fatalf("unexpected monthly series %+v", s.MonthlyRevenue)
	}
}
