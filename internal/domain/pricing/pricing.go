// Package pricing computes budget totals from line items.
package pricing

import (
	"mixto_gestao/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Total is the sum of quantity x unit price over items. Total(nil) is 0.
func Total(items []entities.LineItem) float64 {
	f, _ := sum(items).Float64()
	return f
}

// BudgetTotal is the value stored in Budget.TotalValue.
func BudgetTotal(serviceItems, materialItems []entities.LineItem) float64 {
	f, _ := sum(serviceItems).Add(sum(materialItems)).Float64()
	return f
}

func sum(items []entities.LineItem) decimal.Decimal {
	acc := decimal.Zero
	for _, it := range items {
		acc = acc.Add(decimal.NewFromFloat(it.Quantity).Mul(decimal.NewFromFloat(it.UnitPrice)))
	}
	return acc
}
