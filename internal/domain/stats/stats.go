// Package stats derives the dashboard counters from the current dataset.
package stats

import (
	"mixto_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Compute builds the dashboard statistics.
//
// TotalRevenue sums every budget regardless of status. The monthly series is
// bucketed by calendar month only, across all years; budgets without a date
// are left out of the series but still count toward TotalRevenue.
func Compute(clients []entities.Client, budgets []entities.Budget) entities.DashboardStats {
	total := decimal.Zero
	monthly := [12]decimal.Decimal{}
	active := 0

	for _, b := range budgets {
		v := decimal.NewFromFloat(b.TotalValue)
		total = total.Add(v)
		if b.Status.Active() {
			active++
		}
		if !b.Date.IsZero() {
			m := int(b.Date.Month()) - 1
			monthly[m] = monthly[m].Add(v)
		}
	}

	out := entities.DashboardStats{
		TotalClients:   len(clients),
		TotalBudgets:   len(budgets),
		ActiveServices: active,
		MonthlyRevenue: make([]entities.MonthlyRevenue, 12),
	}
	out.TotalRevenue, _ = total.Float64()
	for i := range monthly {
		v, _ := monthly[i].Float64()
		out.MonthlyRevenue[i] = entities.MonthlyRevenue{Month: i + 1, Label: entities.MonthLabels[i], Value: v}
	}
	return out
}
